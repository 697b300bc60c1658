package kernel

// testClock is a hand-advanced tick source.
type testClock struct {
	now Tick
}

func (c *testClock) NowTicks() Tick { return c.now }

// pump advances simulated time by the given number of ticks, charging one
// tick per dispatch attempt. At most one body runs per tick; bodies ready at
// the same instant run on successive ticks.
func pump(k *Kernel, c *testClock, ticks int) {
	for i := 0; i < ticks; i++ {
		k.Step()
		c.now++
	}
}
