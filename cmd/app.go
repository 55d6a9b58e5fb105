// Package cmd implements the CLI application to report on an investments file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/investview"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&validateCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&insightsCmd{}, "assistant")
	c.Register(&assistCmd{}, "assistant")

	c.Register(&serveCmd{}, "server")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var csvFile = flag.String("f", "investments.csv", "Path to the investments CSV file")
var currency = flag.String("currency", "BRL", "Currency code of the amounts in the investments file")

// DecodeRecords reads and validates the investments file.
func DecodeRecords() ([]investview.Record, error) {
	f, err := os.Open(*csvFile)
	if err != nil {
		return nil, fmt.Errorf("could not open investments file %q: %w", *csvFile, err)
	}
	defer f.Close()
	return investview.ParseReader(f)
}

// renderMarkdown formats markdown for the terminal, or returns it unchanged if it cannot.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}
