package iokit

import (
	"log"
)

var (
	// DefaultExitFn is invoked by functions and methods that treat
	// errors as fatal (e.g., PayloadBuilder.Build).
	DefaultExitFn = func(err error) {
		log.Fatalln(err)
	}
)
