// Package tennis asks a generative search model for recent tennis results.
package tennis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Prompt is sent verbatim to the model.
const Prompt = "直近の主要なテニスの試合結果をいくつか教えてください。大会名、男女シングルスの優勝・準優勝選手名、スコアを箇条書きでまとめてください。"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

var (
	// ErrMissingAPIKey is returned before any network call when no key is set.
	ErrMissingAPIKey = errors.New("tennis: missing api key")
	// ErrFetch wraps every failure of the single fetch attempt.
	ErrFetch = errors.New("tennis: fetch failed")
)

// Source is a web page the answer was grounded on.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Result is the model's answer and its sources.
type Result struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources,omitempty"`
}

// Generator is the slice of the genai client the fetcher needs.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Fetcher performs one search-grounded generation per call. It never retries.
type Fetcher struct {
	APIKey string
	Model  string
	// Generator overrides the genai client; nil builds one from APIKey.
	Generator Generator
}

// Fetch returns the latest results. Failures are reported once and not retried.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, error) {
	gen := f.Generator
	if gen == nil {
		if strings.TrimSpace(f.APIKey) == "" {
			return nil, ErrMissingAPIKey
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  f.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}
		gen = client.Models
	}

	model := f.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := gen.GenerateContent(ctx, model, genai.Text(Prompt), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: empty response", ErrFetch)
	}
	return &Result{Text: resp.Text(), Sources: sources(resp)}, nil
}

// sources keeps grounding chunks that carry a web URI.
func sources(resp *genai.GenerateContentResponse) []Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil
	}
	meta := resp.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}
	var out []Source
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		out = append(out, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return out
}

// Message maps a fetch error to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "APIキーが設定されていません。"
	default:
		return "結果の取得に失敗しました。時間をおいて再試行してください。"
	}
}
