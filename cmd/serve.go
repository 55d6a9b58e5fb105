package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/etnz/investview/server"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type serveCmd struct {
	addr      string
	origins   string
	maxUpload int64
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "start the HTTP API" }
func (*serveCmd) Usage() string {
	return `iv serve [-addr <host:port>] [-origins <list>]

  Serves the valuation of uploaded investments files over HTTP, see 'iv topic server'.
  Insights are enabled when a Gemini API key is configured.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Address to listen on.")
	f.StringVar(&c.origins, "origins", "", "Comma separated list of origins allowed by CORS. Empty allows all origins.")
	f.Int64Var(&c.maxUpload, "max-upload", server.DefaultMaxUploadBytes, "Maximum size in bytes of an uploaded file.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := server.Options{
		Currency:       *currency,
		MaxUploadBytes: c.maxUpload,
	}
	if c.origins != "" {
		opts.AllowOrigins = strings.Split(c.origins, ",")
	}
	if client, err := genai.NewClient(ctx, nil); err != nil {
		log.Printf("warning, insights are disabled: %v", err)
	} else {
		opts.Generator = client.Models
	}

	if err := server.New(opts).ListenAndServe(ctx, c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error serving on %q: %v\n", c.addr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
