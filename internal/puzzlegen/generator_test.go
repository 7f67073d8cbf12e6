package puzzlegen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jinsol-dev/contexthunt/internal/llm"
	"github.com/jinsol-dev/contexthunt/internal/wordbank"
)

func validDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"encoded_sentence": "노사 간의 협상이 교착 상태에 빠졌다.",
		"original_meaning": "노사 간의 협상이 꼼짝 못하는 상태에 빠졌다.",
		"difficulty_level": 2,
		"category": "Politics",
		"target_word": "교착 상태",
		"word_definition": "서로 맞서서 일이 더 나아가지 못하고 멈춘 상태"
	}`)
}

func reviewedDraftJSON() json.RawMessage {
	return json.RawMessage(`{
		"encoded_sentence": "노사 간의 협상이 끝내 교착 상태에 빠졌다.",
		"original_meaning": "노사 간의 협상이 결국 꼼짝 못하게 되었다.",
		"difficulty_level": 2,
		"category": "Politics",
		"target_word": "교착 상태",
		"word_definition": "서로 맞서서 일이 더 나아가지 못하고 멈춘 상태"
	}`)
}

func newTestGenerator(mock *llm.MockProvider) *Generator {
	return New(mock, wordbank.New(), DefaultConfig(), zap.NewNop())
}

func politicsInput() GenerateInput {
	return GenerateInput{Category: wordbank.CategoryPolitics, Difficulty: 2}
}

func TestGenerate_DraftAndReview(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: validDraftJSON()},
		llm.MockReply{Content: reviewedDraftJSON()},
	)
	g := newTestGenerator(mock)

	draft, status, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != ReviewApplied {
		t.Errorf("status = %q, want %q", status, ReviewApplied)
	}
	if draft.EncodedSentence != "노사 간의 협상이 끝내 교착 상태에 빠졌다." {
		t.Errorf("reviewed sentence not applied: %q", draft.EncodedSentence)
	}
	if draft.Category != "Politics" {
		t.Errorf("category = %q, want Politics", draft.Category)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected draft + review calls, got %d", mock.CallCount())
	}
}

func TestGenerate_ReviewFailureKeepsDraft(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: validDraftJSON()},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	g := newTestGenerator(mock)

	draft, status, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("review failure must not fail generation: %v", err)
	}
	if status != ReviewSkipped {
		t.Errorf("status = %q, want %q", status, ReviewSkipped)
	}
	if draft.EncodedSentence != "노사 간의 협상이 교착 상태에 빠졌다." {
		t.Errorf("original draft not kept: %q", draft.EncodedSentence)
	}
}

func TestGenerate_ReviewMalformedKeepsDraft(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: validDraftJSON()},
		llm.MockReply{Content: json.RawMessage(`죄송하지만 문제가 있습니다`)},
	)
	g := newTestGenerator(mock)

	draft, status, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != ReviewSkipped {
		t.Errorf("status = %q, want %q", status, ReviewSkipped)
	}
	if draft.OriginalMeaning == "" {
		t.Error("sanitized draft lost")
	}
}

func TestGenerate_FencedResponseUnwrapped(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(validDraftJSON()) + "\n```")
	mock := llm.NewMockProvider(
		llm.MockReply{Content: fenced},
		llm.MockReply{Content: reviewedDraftJSON()},
	)
	g := newTestGenerator(mock)

	draft, _, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.SourceTerm != "교착 상태" {
		t.Errorf("fence-wrapped draft not parsed: %q", draft.SourceTerm)
	}
}

func TestGenerate_MalformedDraftFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Content: json.RawMessage(`{broken`)})
	g := newTestGenerator(mock)

	_, _, err := g.Generate(context.Background(), politicsInput())
	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedOutputError, got %v", err)
	}
	// The draft was discarded; no review call happens.
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderDownIsUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Err: &llm.ErrUnavailable{}})
	g := newTestGenerator(mock)

	_, _, err := g.Generate(context.Background(), politicsInput())
	var unavail *UnavailableError
	if !errors.As(err, &unavail) {
		t.Fatalf("expected *UnavailableError, got %v", err)
	}
}

func TestGenerate_RequestedCategoryWins(t *testing.T) {
	wrongCategory := json.RawMessage(`{
		"encoded_sentence": "협상이 교착 상태에 빠졌다.",
		"original_meaning": "협상이 꼼짝 못하게 되었다.",
		"difficulty_level": 2,
		"category": "Economy",
		"target_word": "교착 상태"
	}`)
	mock := llm.NewMockProvider(
		llm.MockReply{Content: wrongCategory},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	g := newTestGenerator(mock)

	draft, _, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Category != "Politics" {
		t.Errorf("category = %q, want the requested Politics", draft.Category)
	}
}

func TestGenerate_SanitizesFields(t *testing.T) {
	messy := json.RawMessage(`{
		"encoded_sentence": "**협상이 교착 상태에 빠졌다.**",
		"original_meaning": "` + "`" + `협상이 꼼짝 못하게 되었다.` + "`" + `",
		"difficulty_level": 2,
		"category": "Politics",
		"target_word": "교착 상태"
	}`)
	mock := llm.NewMockProvider(
		llm.MockReply{Content: messy},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	g := newTestGenerator(mock)

	draft, _, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(draft.EncodedSentence, "*`") {
		t.Errorf("markup survived sanitization: %q", draft.EncodedSentence)
	}
	if strings.ContainsAny(draft.OriginalMeaning, "*`") {
		t.Errorf("markup survived sanitization: %q", draft.OriginalMeaning)
	}
}

func TestGenerate_TermComesFromCategoryPool(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: validDraftJSON()},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	g := newTestGenerator(mock)

	_, _, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool := make(map[string]bool)
	for _, term := range wordbank.New().Pool(wordbank.CategoryPolitics) {
		pool[term.Word] = true
	}

	prompt := mock.Calls[0].Messages[0].Content
	found := false
	for word := range pool {
		if strings.Contains(prompt, "목표 단어: "+word) {
			found = true
			break
		}
	}
	if !found {
		t.Error("prompt does not carry a term from the Politics pool")
	}
}

func TestGenerate_RecentTermsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: validDraftJSON()},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	g := newTestGenerator(mock)

	input := politicsInput()
	input.RecentTerms = []string{"레임덕", "필리버스터"}
	if _, _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "레임덕") || !strings.Contains(prompt, "필리버스터") {
		t.Error("recent terms missing from the no-repeat instruction")
	}
}

func TestGenerate_MissingTargetWordFallsBackToPickedTerm(t *testing.T) {
	noTerm := json.RawMessage(`{
		"encoded_sentence": "협상이 교착 상태에 빠졌다.",
		"original_meaning": "협상이 꼼짝 못하게 되었다.",
		"difficulty_level": 2,
		"category": "Politics"
	}`)
	mock := llm.NewMockProvider(
		llm.MockReply{Content: noTerm},
		llm.MockReply{Err: &llm.ErrUnavailable{}},
	)
	g := newTestGenerator(mock)

	draft, _, err := g.Generate(context.Background(), politicsInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.SourceTerm == "" {
		t.Error("SourceTerm empty; expected fallback to the picked term")
	}
}
