package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investview"
	"github.com/etnz/investview/date"
	"github.com/etnz/investview/renderer"
	"github.com/google/subcommands"
)

type allocationCmd struct {
	by string
	outputFlags
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the invested amount by subtype or issuer" }
func (*allocationCmd) Usage() string {
	return `iv allocation [-by subtype|issuer] [-json | -q <jsonpath> | -html]

  Displays the invested principal for each asset subtype or issuer, largest first,
  with its share of the total.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", "subtype", "Dimension of the allocation: 'subtype' or 'issuer'.")
	c.outputFlags.SetFlags(f)
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	records, err := DecodeRecords()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// allocations split the principal, they do not depend on the valuation day.
	agg := investview.Evaluate(records, date.Today())
	table, err := renderer.NewAllocationBy(agg, c.by, *currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	allocs := agg.BySubtype
	if c.by == "issuer" {
		allocs = agg.ByIssuer
	}
	if err := c.write(os.Stdout, renderer.RenderAllocation(table), allocs); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing the allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
