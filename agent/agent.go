package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
	// Render formats the markdown answers before printing, when set.
	Render func(markdown string) string
}

// New creates a new Agent on the user's portfolio.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an io.Reader
// for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, p *Portfolio) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: NewAnalyst(p),
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent.
//
// prompts are asked first, as if the user typed them. Typing "bye", or closing
// the input, ends the session.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Analyst.chat == nil {
		if err := a.Analyst.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to InvestView assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.readLine()
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			if err != nil {
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		answer := contentText(content)
		if a.Render != nil {
			answer = a.Render(answer)
		}
		fmt.Fprintln(a.w, answer)
	}
}

// readLine returns the next line typed by the user. A last line without a
// trailing newline is returned as is, io.EOF comes with the following call.
func (a *Agent) readLine() (string, error) {
	line, err := a.r.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
