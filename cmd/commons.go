package cmd

import (
	"fmt"
	"os"
)

func ExitIfError(err error) {
	ExitfIfError(err, "an unexpected error occurred")
}

func ExitfIfError(err error, message string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
		os.Exit(1)
	}
}
