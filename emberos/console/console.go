// Package console renders a byte-oriented text sink on a framebuffer. It is
// the diagnostics and demo output surface: the kernel's task dump and any
// task that wants a screen write through it. On targets without a display
// the sink can simply be left out; nothing in the kernel depends on it.
package console

import (
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"

	"ember/hal"
)

// Console is an io.Writer drawing text into a hal.Framebuffer through a
// tinyterm terminal.
type Console struct {
	fb   hal.Framebuffer
	term *tinyterm.Terminal
}

// New returns a console covering the whole framebuffer, cleared to black.
func New(fb hal.Framebuffer) *Console {
	term := tinyterm.NewTerminal(newFBDisplay(fb))
	term.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	fb.ClearRGB(0, 0, 0)
	return &Console{fb: fb, term: term}
}

// Write draws p into the terminal. The framebuffer contents change
// immediately; call Flush to present them.
func (c *Console) Write(p []byte) (int, error) {
	return c.term.Write(p)
}

// Flush presents the framebuffer.
func (c *Console) Flush() error {
	c.term.Display()
	return nil
}
