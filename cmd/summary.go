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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	dayFlag
	outputFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio overview, allocations and history" }
func (*summaryCmd) Usage() string {
	return `iv summary [-d <date>] [-json | -q <jsonpath> | -html]

  Displays the total invested, the projected value and return on a day, the
  allocation by subtype and by issuer, and the value history.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.SetFlags(f)
	c.outputFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	agg := investview.Evaluate(records, on)
	report := renderer.NewReport(agg, investview.Series(records, on), *currency)
	if err := c.write(os.Stdout, renderer.RenderReport(report), agg); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing the report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
