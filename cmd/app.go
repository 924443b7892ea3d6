// Package cmd implements the CLI application to run a banca game day.
package cmd

import (
	"log"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dayCmd{}, "day")

	c.Register(&planCmd{}, "settlement")

	c.Register(&scenarioCmd{}, "documentation")
	c.Register(&topicCmd{}, "documentation")
}

// Currency returns the display currency, overridable with BANCA_CURRENCY.
func Currency() string {
	if c := os.Getenv("BANCA_CURRENCY"); c != "" {
		if money.GetCurrency(c) == nil {
			log.Printf("warning, unknown currency %q, using BRL instead", c)
			return "BRL"
		}
		return c
	}
	return "BRL"
}
