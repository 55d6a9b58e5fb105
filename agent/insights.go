package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used unless IV_MODEL says otherwise.
const DefaultModel = "gemini-2.5-flash"

// Model returns the model name to use.
func Model() string {
	if m := strings.TrimSpace(os.Getenv("IV_MODEL")); m != "" {
		return m
	}
	return DefaultModel
}

// Generator produces content from a model. *genai.Models implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ErrNoInsights is returned when the model answers without any text.
var ErrNoInsights = errors.New("the model returned no insights")

const insightsPrompt = `Você é um assistente de IA especializado em fornecer insights sobre carteiras de investimentos. Sua resposta deve ser em português do Brasil.

Com base no resumo do portfólio fornecido, gere insights que resumam o desempenho histórico do portfólio, destacando as principais tendências e possíveis áreas de melhoria. Não forneça aconselhamento financeiro direto ou recomendações de negociação específicas.

Resumo do Portfólio: %s

Insights:`

// InsightsPrompt returns the prompt sent to the model for a portfolio summary.
func InsightsPrompt(summary string) string {
	return fmt.Sprintf(insightsPrompt, summary)
}

// Insights asks the model for a narrative analysis of the portfolio summary.
//
// It makes a single request, without retries.
func Insights(ctx context.Context, gen Generator, summary string) (string, error) {
	resp, err := gen.GenerateContent(ctx, Model(), genai.Text(InsightsPrompt(summary)), nil)
	if err != nil {
		return "", fmt.Errorf("could not generate insights: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrNoInsights
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	return contentText(resp.Candidates[0].Content)
}

func contentText(c *genai.Content) string {
	var b strings.Builder
	for _, p := range c.Parts {
		if p != nil && !p.Thought {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
