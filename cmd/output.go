package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/investview/date"
	"github.com/etnz/investview/renderer"
)

// outputFlags select the format of a report.
type outputFlags struct {
	json  bool
	query string
	html  bool
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "Print the report as json.")
	f.StringVar(&o.query, "q", "", "Print the part of the json report selected by a JSONPath, e.g. '$.totalInvested'. Implies -json.")
	f.BoolVar(&o.html, "html", false, "Print the report as HTML.")
}

// write prints the report: v as json, or md converted to the selected format.
func (o *outputFlags) write(w io.Writer, md string, v any) error {
	switch {
	case o.json || o.query != "":
		if o.query != "" {
			var err error
			if v, err = selectJSON(v, o.query); err != nil {
				return err
			}
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case o.html:
		html, err := renderer.ToHTML(md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	}
	_, err := io.WriteString(w, renderMarkdown(md))
	return err
}

// selectJSON evaluates a JSONPath against the json representation of v.
func selectJSON(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	// jsonpath returns a list for wildcards and filters, keep the single answer.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}

// dayFlag is the reference day of a valuation.
type dayFlag struct {
	day string
}

func (d *dayFlag) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.day, "d", "today", "Reference day of the valuation. See 'iv topic dates' for supported formats.")
}

func (d *dayFlag) date() (date.Date, error) {
	return date.Parse(d.day)
}
