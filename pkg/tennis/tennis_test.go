package tennis

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

type fakeGenerator struct {
	calls int
	model string
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, _ []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	if config == nil || len(config.Tools) != 1 || config.Tools[0].GoogleSearch == nil {
		return nil, errors.New("expected google search tool")
	}
	return f.resp, f.err
}

func TestFetchMissingKey(t *testing.T) {
	f := &Fetcher{}
	_, err := f.Fetch(context.Background())
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if Message(err) != "APIキーが設定されていません。" {
		t.Fatalf("unexpected message %q", Message(err))
	}
}

func TestFetchSingleAttemptOnFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	f := &Fetcher{Generator: gen}
	_, err := f.Fetch(context.Background())
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if gen.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", gen.calls)
	}
	if Message(err) != "結果の取得に失敗しました。時間をおいて再試行してください。" {
		t.Fatalf("unexpected message %q", Message(err))
	}
}

func TestFetchKeepsSourcesWithURI(t *testing.T) {
	gen := &fakeGenerator{resp: &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: genai.NewContentFromText("- 全仏オープン: 優勝 A", genai.RoleModel),
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{URI: "https://example.com/a", Title: "A"}},
					{Web: &genai.GroundingChunkWeb{Title: "no uri"}},
					{},
				},
			},
		}},
	}}
	f := &Fetcher{Generator: gen}
	res, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.model != DefaultModel {
		t.Fatalf("expected default model, got %s", gen.model)
	}
	if res.Text != "- 全仏オープン: 優勝 A" {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if len(res.Sources) != 1 || res.Sources[0].URI != "https://example.com/a" {
		t.Fatalf("unexpected sources %+v", res.Sources)
	}
}

func TestMessageNil(t *testing.T) {
	if Message(nil) != "" {
		t.Fatalf("expected empty message")
	}
}
