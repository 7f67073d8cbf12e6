package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/jinsol-dev/contexthunt/internal/scoring"
	"github.com/jinsol-dev/contexthunt/internal/store"
)

type fakePuzzles struct {
	puzzle *store.Puzzle
	bumps  []bool
}

func (f *fakePuzzles) Get(_ context.Context, id string) (*store.Puzzle, error) {
	if f.puzzle == nil || f.puzzle.ID != id {
		return nil, store.ErrNotFound
	}
	return f.puzzle, nil
}

func (f *fakePuzzles) BumpCounters(_ context.Context, _ string, correct bool) error {
	f.bumps = append(f.bumps, correct)
	return nil
}

type fakeAttempts struct {
	rows []*store.Attempt
}

func (f *fakeAttempts) Append(_ context.Context, a *store.Attempt) error {
	f.rows = append(f.rows, a)
	return nil
}

type fakeUsers struct {
	credited []uint
}

func (f *fakeUsers) BumpSolved(_ context.Context, id uint) error {
	f.credited = append(f.credited, id)
	return nil
}

type fakeBackend struct {
	result scoring.Result
	err    error
	calls  int
}

func (f *fakeBackend) Score(_ context.Context, _, _ string) (scoring.Result, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeBackend) Name() string { return "fake" }

func testPuzzle() *store.Puzzle {
	return &store.Puzzle{
		ID:           "q_test0001",
		EncodedText:  "노사 간의 협상이 교착 상태에 빠졌다.",
		SourceTerm:   "교착 상태",
		ModelMeaning: "노사 간의 협상이 꼼짝 못하는 상태에 빠졌다.",
		Category:     "Politics",
		Difficulty:   2,
	}
}

type fixture struct {
	verifier *Verifier
	puzzles  *fakePuzzles
	attempts *fakeAttempts
	users    *fakeUsers
	backend  *fakeBackend
}

func newFixture(backend *fakeBackend) *fixture {
	f := &fixture{
		puzzles:  &fakePuzzles{puzzle: testPuzzle()},
		attempts: &fakeAttempts{},
		users:    &fakeUsers{},
		backend:  backend,
	}
	f.verifier = New(f.puzzles, f.attempts, f.users, f.backend, nil)
	return f
}

func check(t *testing.T, f *fixture, answer string, learner *store.User) *Verdict {
	t.Helper()
	verdict, err := f.verifier.Check(context.Background(), Input{
		PuzzleID: "q_test0001",
		Answer:   answer,
		Learner:  learner,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return verdict
}

func TestCheck_UnknownPuzzle(t *testing.T) {
	f := newFixture(&fakeBackend{})
	_, err := f.verifier.Check(context.Background(), Input{PuzzleID: "q_missing", Answer: "뭔가"})
	if !errors.Is(err, ErrPuzzleNotFound) {
		t.Fatalf("err = %v, want ErrPuzzleNotFound", err)
	}
	if len(f.attempts.rows) != 0 {
		t.Error("nothing should be recorded for an unknown puzzle")
	}
}

func TestCheck_BackendScorePasses(t *testing.T) {
	f := newFixture(&fakeBackend{result: scoring.Result{Score: 72.5, Feedback: "잘했어요"}})
	verdict := check(t, f, "회사와 노동자들의 협상이 더는 나아가지 못하게 되었다.", nil)

	if !verdict.IsCorrect {
		t.Error("score 72.5 must be correct")
	}
	if verdict.Score != 72.5 {
		t.Errorf("score = %v, want 72.5", verdict.Score)
	}
	if verdict.CorrectAnswer != "" {
		t.Error("model meaning must not be revealed on success")
	}
	if f.backend.calls != 1 {
		t.Errorf("backend calls = %d, want 1", f.backend.calls)
	}
}

func TestCheck_BackendScoreFails(t *testing.T) {
	f := newFixture(&fakeBackend{result: scoring.Result{Score: 31, Feedback: "아쉬워요"}})
	verdict := check(t, f, "협상이 아주 잘 풀리고 있다.", nil)

	if verdict.IsCorrect {
		t.Error("score 31 must be incorrect")
	}
	if verdict.CorrectAnswer != testPuzzle().ModelMeaning {
		t.Errorf("model meaning must be revealed on failure, got %q", verdict.CorrectAnswer)
	}
}

func TestCheck_ScoreExactlyAtCutoff(t *testing.T) {
	f := newFixture(&fakeBackend{result: scoring.Result{Score: 50}})
	if verdict := check(t, f, "협상이 멈춘 상태다.", nil); !verdict.IsCorrect {
		t.Error("score 50 is correct; the cutoff is inclusive")
	}
}

func TestCheck_NonsenseAnswers(t *testing.T) {
	for _, answer := range []string{"", "ㅁ", ".", "?!...", "   ", "!@#$%"} {
		f := newFixture(&fakeBackend{result: scoring.Result{Score: 100}})
		verdict := check(t, f, answer, nil)

		if verdict.IsCorrect || verdict.Score != 0 {
			t.Errorf("answer %q: got score %v, want nonsense rejection", answer, verdict.Score)
		}
		if verdict.Feedback != nonsenseFeedback {
			t.Errorf("answer %q: feedback = %q", answer, verdict.Feedback)
		}
		if f.backend.calls != 0 {
			t.Errorf("answer %q reached the backend", answer)
		}
	}
}

func TestCheck_ModelAnswerMatchBypassesBackend(t *testing.T) {
	f := newFixture(&fakeBackend{err: errors.New("down")})
	// Spacing removed entirely; normalization must still line it up.
	verdict := check(t, f, "노사간의협상이꼼짝못하는상태에빠졌다.", nil)

	if !verdict.IsCorrect || verdict.Score != 100 {
		t.Errorf("model-answer match: got correct=%v score=%v", verdict.IsCorrect, verdict.Score)
	}
	if f.backend.calls != 0 {
		t.Error("model-answer match must not call the backend")
	}
}

func TestCheck_CopyingThePuzzleFails(t *testing.T) {
	f := newFixture(&fakeBackend{result: scoring.Result{Score: 100}})
	verdict := check(t, f, testPuzzle().EncodedText, nil)

	if verdict.IsCorrect || verdict.Score != 0 {
		t.Errorf("copied puzzle text: got correct=%v score=%v", verdict.IsCorrect, verdict.Score)
	}
	if verdict.Feedback != copyFeedback {
		t.Errorf("feedback = %q", verdict.Feedback)
	}
	if f.backend.calls != 0 {
		t.Error("copied answer must not call the backend")
	}
}

func TestCheck_BackendFailureIsIncorrectNotError(t *testing.T) {
	f := newFixture(&fakeBackend{err: errors.New("rate limited")})
	verdict := check(t, f, "협상이 더는 진행되지 않는다.", nil)

	if verdict.IsCorrect || verdict.Score != 0 {
		t.Errorf("backend failure: got correct=%v score=%v", verdict.IsCorrect, verdict.Score)
	}
	if verdict.Feedback != failureFeedback {
		t.Errorf("feedback = %q", verdict.Feedback)
	}
	// Still an attempt; still recorded.
	if len(f.attempts.rows) != 1 {
		t.Errorf("attempts recorded = %d, want 1", len(f.attempts.rows))
	}
}

func TestCheck_RecordsEveryOutcome(t *testing.T) {
	f := newFixture(&fakeBackend{result: scoring.Result{Score: 80, Feedback: "좋아요"}})

	check(t, f, "협상이 멈춰서 움직이지 않는다.", nil) // correct
	check(t, f, "ㅁ", nil)                   // nonsense

	if len(f.puzzles.bumps) != 2 {
		t.Fatalf("counter bumps = %d, want 2", len(f.puzzles.bumps))
	}
	if !f.puzzles.bumps[0] || f.puzzles.bumps[1] {
		t.Errorf("bumps = %v, want [true false]", f.puzzles.bumps)
	}
	if len(f.attempts.rows) != 2 {
		t.Fatalf("attempts = %d, want 2", len(f.attempts.rows))
	}
	if !f.attempts.rows[0].IsCorrect || f.attempts.rows[0].SimilarityScore != 80 {
		t.Errorf("first attempt = %+v", f.attempts.rows[0])
	}
}

func TestCheck_SolvedCredit(t *testing.T) {
	username := "jinsol"
	member := &store.User{ID: 7, Username: &username}
	guest := &store.User{ID: 8, IsGuest: true}

	tests := []struct {
		name     string
		learner  *store.User
		score    float64
		credited int
	}{
		{"member correct", member, 90, 1},
		{"member incorrect", member, 10, 0},
		{"guest correct", guest, 90, 0},
		{"anonymous correct", nil, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&fakeBackend{result: scoring.Result{Score: tt.score}})
			check(t, f, "협상이 멈춰 버렸다.", tt.learner)
			if len(f.users.credited) != tt.credited {
				t.Errorf("credited %d times, want %d", len(f.users.credited), tt.credited)
			}
		})
	}
}
