package main

import (
	"fmt"
	"os"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

// newPrinter returns a message printer for the user's preferred locales,
// falling back to en-US when none can be detected.
func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sm83: locale: %v\n", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}
