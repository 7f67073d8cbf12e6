package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/jinsol-dev/contexthunt/internal/llm"
)

// Embedding grades by cosine similarity of multilingual sentence
// embeddings. Both spans are encoded in one request with the e5-style
// "query: " prefix the deployed model expects.
//
// Raw cosine scores cluster high: historically a raw 85 was the pass bar
// for this backend while the engine-wide rule is score >= 50. Rather than
// carry a divergent threshold, the raw score is calibrated so the old 85
// cutoff lands exactly on 50 and the global rule applies to every backend.
type Embedding struct {
	embedder llm.Embedder
}

// NewEmbedding returns the embedding-cosine backend.
func NewEmbedding(embedder llm.Embedder) *Embedding {
	return &Embedding{embedder: embedder}
}

func (e *Embedding) Score(ctx context.Context, candidate, reference string) (Result, error) {
	vecs, err := e.embedder.Embed(ctx, []string{
		"query: " + candidate,
		"query: " + reference,
	})
	if err != nil {
		return Result{}, fmt.Errorf("scoring: embed: %w", err)
	}
	if len(vecs) != 2 {
		return Result{}, fmt.Errorf("scoring: expected 2 vectors, got %d", len(vecs))
	}

	raw := clampScore(cosine(vecs[0], vecs[1]) * 100)
	score := calibrate(raw)

	return Result{Score: score, Feedback: embeddingFeedback(score)}, nil
}

func (*Embedding) Name() string { return "embedding" }

// calibrate maps the raw cosine scale onto the engine scale: piecewise
// linear with raw 85 pinned to 50.
func calibrate(raw float64) float64 {
	const pivot = 85.0
	if raw <= pivot {
		return clampScore(raw * 50 / pivot)
	}
	return clampScore(50 + (raw-pivot)*50/(100-pivot))
}

// cosine computes cosine similarity of two vectors, 0 when either has zero
// magnitude or lengths differ.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func embeddingFeedback(score float64) string {
	switch {
	case score >= 50:
		return "의미가 기준 문장과 잘 통해요."
	case score >= 30:
		return "방향은 맞지만 핵심 의미가 조금 달라요."
	default:
		return "기준 문장과 의미가 많이 달라요."
	}
}
