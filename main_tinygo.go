//go:build tinygo && baremetal

package main

import (
	"ember/app"
	"ember/hal"
)

func main() {
	h := hal.New()
	sys, err := app.New(h, app.DefaultConfig())
	if err != nil {
		h.Logger().WriteLineString("boot: " + err.Error())
		for {
		}
	}
	sys.Run()
}
