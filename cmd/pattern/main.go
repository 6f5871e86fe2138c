// pattern generates marker patterns: fixed-length strings that count
// through an alphabet in odometer order. Useful for laying out
// payloads and understanding which part of a payload overwrote
// which part of process state.
package main

import (
	"errors"
	"log"
	"os"

	"gitlab.com/stephen-fox/cyclic/internal/cli"
)

func main() {
	log.SetFlags(0)

	err := mainWithError()
	if errors.Is(err, cli.ErrNoPatterns) {
		os.Exit(1)
	}

	if err != nil {
		log.Fatalln("fatal:", err)
	}
}

func mainWithError() error {
	return cli.NewRootCommand().Execute()
}
