// main is the entry point for the frontoffice CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hoopsight/frontoffice/cmd"
	"github.com/hoopsight/frontoffice/internal/contract"
	"github.com/hoopsight/frontoffice/internal/iocache"
)

func main() {
	err := cmd.Execute()

	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Could not stop profiling", perr)
	}

	iocache.CloseStores()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
