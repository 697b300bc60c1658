package kernel

// Tick is a monotonic millisecond counter value. It wraps every 65.536 s;
// time comparisons use unsigned subtraction, so the wrap is transparent for
// any interval shorter than 32768 ticks.
type Tick = uint16

// Clock is the platform tick source. NowTicks must be monotonic modulo 2^16
// and safe to call from any task context.
type Clock interface {
	NowTicks() Tick
}

// MillisToTicks converts milliseconds to ticks. At the 1 ms tick granularity
// this is the identity.
func MillisToTicks(ms uint16) Tick { return Tick(ms) }

// tickLE reports whether a happened at or before b. Only valid while the two
// ticks are within 32768 of each other.
func tickLE(a, b Tick) bool { return b-a < 0x8000 }
