// Package main is the entry point for the specctl CLI client.
package main

import (
	"github.com/donaldgifford/phone-spec-scraper/cmd/specctl/cmd"
)

func main() {
	cmd.Execute()
}
