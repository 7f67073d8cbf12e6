package puzzlegen

import "github.com/jinsol-dev/contexthunt/internal/llm"

// PuzzleSchema is the required output shape for both the drafting call and
// the review call. target_word / original_sentence and word_definition are
// optional editorial fields.
var PuzzleSchema = &llm.Schema{
	Name:        "vocab-puzzle",
	Description: "A difficult Korean sentence built around a target vocabulary term, with its plain-language meaning",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"encoded_sentence": map[string]any{
				"type":        "string",
				"description": "The difficult sentence shown to the learner. Korean only, no markdown, self-contained.",
			},
			"original_meaning": map[string]any{
				"type":        "string",
				"description": "The same sentence in plain everyday Korean, with the hard term paraphrased away.",
			},
			"difficulty_level": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Difficulty of reading the encoded sentence, 1 (easy) to 5 (hard).",
			},
			"category": map[string]any{
				"type":        "string",
				"description": "The requested category, echoed back.",
			},
			"target_word": map[string]any{
				"type":        "string",
				"description": "The isolated target vocabulary term, exactly as it appears in the sentence. The term only, no extra words.",
			},
			"original_sentence": map[string]any{
				"type":        "string",
				"description": "Alternative field name for the target term, accepted for older model outputs.",
			},
			"word_definition": map[string]any{
				"type":        "string",
				"description": "A one-line dictionary-style definition of the target term. Editorial aid, not shown to learners.",
			},
		},
		"required":             []any{"encoded_sentence", "original_meaning", "difficulty_level", "category"},
		"additionalProperties": false,
	},
}
