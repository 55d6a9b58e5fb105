package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investview"
	"github.com/etnz/investview/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	dayFlag
	outputFlags
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the portfolio value over time" }
func (*historyCmd) Usage() string {
	return `iv history [-d <date>] [-json | -q <jsonpath> | -html]

  Displays the projected value of the portfolio on each acquisition day, and
  on the reference day.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.SetFlags(f)
	c.outputFlags.SetFlags(f)
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := c.date()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	records, err := DecodeRecords()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series := investview.Series(records, on)
	table := renderer.NewHistoryTable("Performance", series, *currency)
	if err := c.write(os.Stdout, renderer.RenderHistory(&table), series); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing the history: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
