// Package main is the entry point for the spec-scraper service.
package main

import (
	"os"

	"github.com/donaldgifford/phone-spec-scraper/cmd/spec-scraper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
