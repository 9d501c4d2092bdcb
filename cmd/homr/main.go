// Command homr fetches, inspects and evaluates against the HOMR corpus.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
