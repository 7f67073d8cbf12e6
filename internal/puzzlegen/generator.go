package puzzlegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jinsol-dev/contexthunt/internal/llm"
	"github.com/jinsol-dev/contexthunt/internal/sanitize"
	"github.com/jinsol-dev/contexthunt/internal/wordbank"
)

// Generator orchestrates term selection, the drafting call, sanitization
// and the best-effort review pass.
type Generator struct {
	provider llm.Provider
	bank     *wordbank.Bank
	cfg      Config
	log      *zap.Logger
}

// New builds a Generator.
func New(provider llm.Provider, bank *wordbank.Bank, cfg Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{provider: provider, bank: bank, cfg: cfg, log: log}
}

// draftPayload mirrors the wire shape of both external calls.
type draftPayload struct {
	EncodedSentence  string `json:"encoded_sentence"`
	OriginalMeaning  string `json:"original_meaning"`
	DifficultyLevel  int    `json:"difficulty_level"`
	Category         string `json:"category"`
	TargetWord       string `json:"target_word"`
	OriginalSentence string `json:"original_sentence"`
	WordDefinition   string `json:"word_definition"`
}

// Generate produces one validated draft for the input. The review pass is
// best-effort: its failure downgrades the status, never the draft. Errors
// come back as *UnavailableError or *MalformedOutputError; nothing else
// crosses this boundary.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Draft, ReviewStatus, error) {
	term, err := g.bank.Pick(input.Category)
	if err != nil {
		// Empty pool is a configuration error, not a transient failure.
		return nil, "", fmt.Errorf("puzzlegen: %w", err)
	}

	draft, err := g.draft(ctx, term, input)
	if err != nil {
		return nil, "", err
	}

	reviewed, err := g.review(ctx, draft)
	if err != nil {
		g.log.Warn("review pass skipped, keeping sanitized draft",
			zap.String("category", input.Category),
			zap.String("term", term.Word),
			zap.Error(err))
		return draft, ReviewSkipped, nil
	}

	return reviewed, ReviewApplied, nil
}

// draft asks the model for a new puzzle and sanitizes the decoded payload.
func (g *Generator) draft(ctx context.Context, term wordbank.Term, input GenerateInput) (*Draft, error) {
	ctx = llm.WithPurpose(ctx, "puzzle-draft")

	resp, err := g.provider.Complete(ctx, llm.Request{
		System:      generationSystemPrompt,
		Messages:    llm.UserMessage(buildGenerationMessage(term, input)),
		Schema:      PuzzleSchema,
		Temperature: g.cfg.DraftTemperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, classify(err)
	}

	payload, err := parsePayload(resp.Content)
	if err != nil {
		return nil, err
	}

	draft := payload.toDraft(input)
	if draft.SourceTerm == "" {
		draft.SourceTerm = term.Word
	}
	if draft.EncodedSentence == "" || draft.OriginalMeaning == "" {
		return nil, &MalformedOutputError{
			Content: resp.Content,
			Err:     errors.New("empty sentence or meaning after sanitization"),
		}
	}
	return draft, nil
}

// review runs the editor pass. Any failure is reported to the caller,
// which keeps the prior draft.
func (g *Generator) review(ctx context.Context, draft *Draft) (*Draft, error) {
	ctx = llm.WithPurpose(ctx, "puzzle-review")

	resp, err := g.provider.Complete(ctx, llm.Request{
		System:      reviewSystemPrompt,
		Messages:    llm.UserMessage(buildReviewMessage(draft)),
		Schema:      PuzzleSchema,
		Temperature: g.cfg.ReviewTemperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	payload, err := parsePayload(resp.Content)
	if err != nil {
		return nil, err
	}

	reviewed := payload.toDraft(GenerateInput{
		Category:   draft.Category,
		Difficulty: draft.Difficulty,
	})
	if reviewed.SourceTerm == "" {
		reviewed.SourceTerm = draft.SourceTerm
	}
	if reviewed.EncodedSentence == "" || reviewed.OriginalMeaning == "" {
		return nil, errors.New("review produced an empty draft")
	}
	return reviewed, nil
}

// parsePayload unwraps any fence wrapper and decodes the wire shape.
func parsePayload(raw json.RawMessage) (*draftPayload, error) {
	body := sanitize.StripFence(string(raw))

	var p draftPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, &MalformedOutputError{Content: raw, Err: err}
	}
	return &p, nil
}

// toDraft sanitizes every string field and normalizes the record: the
// requested category always wins, out-of-range difficulty falls back to
// the requested one.
func (p *draftPayload) toDraft(input GenerateInput) *Draft {
	term := p.TargetWord
	if term == "" {
		term = p.OriginalSentence
	}

	difficulty := p.DifficultyLevel
	if difficulty < 1 || difficulty > 5 {
		difficulty = input.Difficulty
	}

	return &Draft{
		EncodedSentence: sanitize.Clean(p.EncodedSentence),
		OriginalMeaning: sanitize.Clean(p.OriginalMeaning),
		SourceTerm:      sanitize.Clean(term),
		WordDefinition:  sanitize.Clean(p.WordDefinition),
		Category:        input.Category,
		Difficulty:      difficulty,
	}
}

// classify maps transport-level errors onto the package error taxonomy.
func classify(err error) error {
	var bad *llm.ErrBadOutput
	if errors.As(err, &bad) {
		return &MalformedOutputError{Content: bad.Content, Err: err}
	}
	return &UnavailableError{Err: err}
}
