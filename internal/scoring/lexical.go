package scoring

import "context"

// Lexical grades by character-level sequence similarity of the normalized
// strings. Deterministic, cheap and offline, but correspondingly poor at
// real paraphrase detection. Useful as a no-dependency fallback and in
// tests.
type Lexical struct{}

// NewLexical returns the lexical backend.
func NewLexical() *Lexical { return &Lexical{} }

func (*Lexical) Score(_ context.Context, candidate, reference string) (Result, error) {
	score := clampScore(SequenceRatio(Normalize(candidate), Normalize(reference)) * 100)
	return Result{Score: score, Feedback: lexicalFeedback(score)}, nil
}

func (*Lexical) Name() string { return "lexical" }

func lexicalFeedback(score float64) string {
	switch {
	case score >= 50:
		return "표현이 기준 문장과 충분히 비슷해요."
	case score >= 25:
		return "비슷한 부분이 있지만 핵심 내용이 더 필요해요."
	default:
		return "기준 문장과 많이 달라요. 문장의 의미를 다시 생각해 보세요."
	}
}
