package agent

import (
	"context"
	"fmt"

	"github.com/etnz/investview"
	"github.com/etnz/investview/date"
	"github.com/etnz/investview/docs"
	"github.com/etnz/investview/renderer"
	"google.golang.org/genai"
)

// Portfolio is the data the assistant tools work on.
type Portfolio struct {
	Records  []investview.Record
	Currency string
}

// NewAnalyst returns the expert answering the user's questions about the portfolio.
func NewAnalyst(p *Portfolio) *Expert {
	lib := p.Tools()
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It reads the user's investments and computes their
		projected value, allocation and history.`,
		ModelName: Model(),
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an analyst in charge of the user's fixed income portfolio. Each investment has an
			acquisition date, an asset subtype (CDB, LCI, ...), an issuer, an invested amount
			and a constant annual rate of return.

			Use the Tools to get the figures, never compute the projected values yourself:
			  - portfolio_overview for totals, projected value and return
			  - allocation for the split by subtype or by issuer
			  - performance_history for the value of the portfolio over time

			Answer in the language of the user. Summarize trends and concentrations,
			do not give direct financial advice or trading recommendations.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions exposing the portfolio to the model.
func (p *Portfolio) Tools() []Function {
	return []Function{p.overview(), p.allocation(), p.history()}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func dateSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeString,
		Description: `The reference day of the valuation. Today is the default.
		Otherwise it uses a flexible date format based on YYYY-MM-DD:

		` + must(docs.GetTopic("dates")),
	}
}

func (p *Portfolio) overview() *Func {
	const name = "portfolio_overview"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Overview of the portfolio on a given day: total invested, projected value,
			return, allocations and the value history.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema()},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			agg := investview.Evaluate(p.Records, on)
			report := renderer.NewReport(agg, investview.Series(p.Records, on), p.Currency)
			return outputResponse(id, name, renderer.RenderReport(report))
		},
	}
}

func (p *Portfolio) allocation() *Func {
	const name = "allocation"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Split of the invested principal by asset subtype or by issuer, largest first.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"by": {
						Type:        genai.TypeString,
						Enum:        []string{"subtype", "issuer"},
						Description: "The dimension of the split.",
					},
				},
				Required: []string{"by"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with the invested amount and the share of each label.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			by, _ := args["by"].(string)
			// allocations do not depend on the valuation day.
			agg := investview.Evaluate(p.Records, date.Today())
			table, err := renderer.NewAllocationBy(agg, by, p.Currency)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, renderer.RenderAllocation(table))
		},
	}
}

func (p *Portfolio) history() *Func {
	const name = "performance_history"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Projected value of the whole portfolio on each acquisition day, and on the
			reference day.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"date": dateSchema()},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the value by day.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on, err := parseDate(args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			table := renderer.NewHistoryTable("Performance", investview.Series(p.Records, on), p.Currency)
			return outputResponse(id, name, renderer.RenderHistory(&table))
		},
	}
}

func parseDate(args map[string]any) (date.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return date.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return date.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	on, err := date.Parse(sdate)
	if err != nil {
		return date.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format date\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}
	return on, nil
}
