// Package main is the entry point for the sms-cost CLI.
package main

import (
	"os"

	"sms-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
