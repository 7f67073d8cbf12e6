package scoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jinsol-dev/contexthunt/internal/llm"
	"github.com/jinsol-dev/contexthunt/internal/sanitize"
)

// Judge asks the generative capability to grade the pair. Most capable at
// true paraphrase detection, also the slowest and the only strategy with a
// per-call cost. The model's own is_correct boolean is parsed but treated
// as advisory only; correctness is always recomputed from the score.
type Judge struct {
	provider llm.Provider
}

// NewJudge returns the LLM-judge backend.
func NewJudge(provider llm.Provider) *Judge {
	return &Judge{provider: provider}
}

const judgeSystemPrompt = `You are a strict but fair evaluator of Korean reading comprehension. You compare a learner's paraphrase against a reference sentence and output JSON only.`

const judgeRubric = `Compare the meaning of the two texts below.

[Reference]
%s

[Learner's answer]
%s

Scoring rules:
- Reward paraphrase: different words with the same core meaning deserve a high score.
- Synonyms, tone shifts and reordering are fine. Judge meaning, not wording.
- Score low only when the meaning is unrelated or opposite.
- similarity_score is an integer from 0 to 100. Use precise values like 73 or 41, not values rounded to 5 or 10.
- The decision rule is: is_correct is true if and only if similarity_score >= 50.
- feedback is one short sentence in Korean.`

// judgeVerdictSchema is the required judge output shape.
var judgeVerdictSchema = &llm.Schema{
	Name:        "similarity-verdict",
	Description: "Semantic similarity grade for a learner's paraphrase",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Advisory verdict; must equal similarity_score >= 50",
			},
			"similarity_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Precise semantic similarity, not rounded to multiples of 5 or 10",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One short sentence of feedback in Korean",
			},
		},
		"required":             []any{"is_correct", "similarity_score", "feedback"},
		"additionalProperties": false,
	},
}

type judgeVerdict struct {
	IsCorrect       bool    `json:"is_correct"`
	SimilarityScore float64 `json:"similarity_score"`
	Feedback        string  `json:"feedback"`
}

func (j *Judge) Score(ctx context.Context, candidate, reference string) (Result, error) {
	ctx = llm.WithPurpose(ctx, "answer-judge")

	resp, err := j.provider.Complete(ctx, llm.Request{
		System:      judgeSystemPrompt,
		Messages:    llm.UserMessage(fmt.Sprintf(judgeRubric, reference, candidate)),
		Schema:      judgeVerdictSchema,
		Temperature: 0.1,
		MaxTokens:   256,
	})
	if err != nil {
		return Result{}, fmt.Errorf("scoring: judge call: %w", err)
	}

	var v judgeVerdict
	if err := json.Unmarshal(resp.Content, &v); err != nil {
		return Result{}, fmt.Errorf("scoring: parse judge verdict: %w", err)
	}

	// The stated boolean is ignored even when it contradicts the score;
	// the verifier derives correctness from the number.
	return Result{
		Score:    clampScore(v.SimilarityScore),
		Feedback: sanitize.Clean(v.Feedback),
	}, nil
}

func (*Judge) Name() string { return "judge" }
