package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investview"
	"github.com/etnz/investview/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type insightsCmd struct {
	dayFlag
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask Gemini for an analysis of the portfolio" }
func (*insightsCmd) Usage() string {
	return `iv insights [-d <date>]

  Prints the text summary of the portfolio and the analysis Gemini makes of it.
  Requires GEMINI_API_KEY or GOOGLE_API_KEY.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	c.dayFlag.SetFlags(f)
}

func (c *insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	summary := investview.Summarize(investview.Evaluate(records, on), *currency)
	fmt.Println(summary)
	fmt.Println()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	insights, err := agent.Insights(ctx, client.Models, summary)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to generate insights:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(insights)
	return subcommands.ExitSuccess
}
