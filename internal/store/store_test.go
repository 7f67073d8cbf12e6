package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testPuzzle() *Puzzle {
	return &Puzzle{
		EncodedText:  "노사 간의 협상이 교착 상태에 빠졌다.",
		SourceTerm:   "교착 상태",
		ModelMeaning: "노사 간의 협상이 꼼짝 못하는 상태에 빠졌다.",
		Category:     "Politics",
		Difficulty:   2,
	}
}

func TestPuzzles_CreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testPuzzle()
	require.NoError(t, s.Puzzles().Create(ctx, p))
	require.NotEmpty(t, p.ID)

	got, err := s.Puzzles().Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.EncodedText, got.EncodedText)
	require.Equal(t, "Politics", got.Category)
	require.Zero(t, got.TotalAttempts)
}

func TestPuzzles_GetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Puzzles().Get(context.Background(), "q_missing1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPuzzles_CounterInvariant(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testPuzzle()
	require.NoError(t, s.Puzzles().Create(ctx, p))

	results := []bool{true, false, true, false, false}
	for _, correct := range results {
		require.NoError(t, s.Puzzles().BumpCounters(ctx, p.ID, correct))

		got, err := s.Puzzles().Get(ctx, p.ID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got.CorrectCount, 0)
		require.LessOrEqual(t, got.CorrectCount, got.TotalAttempts)
	}

	got, err := s.Puzzles().Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 5, got.TotalAttempts)
	require.Equal(t, 2, got.CorrectCount)
	require.InDelta(t, 40.0, got.SuccessRate(), 0.001)
}

func TestPuzzles_BumpCountersMissing(t *testing.T) {
	s := openTestStore(t)
	err := s.Puzzles().BumpCounters(context.Background(), "q_missing1", true)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAttempts_AppendOnly(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testPuzzle()
	require.NoError(t, s.Puzzles().Create(ctx, p))

	require.NoError(t, s.Attempts().Append(ctx, &Attempt{
		PuzzleID:        p.ID,
		UserAnswer:      "협상이 멈춰 버렸다",
		SimilarityScore: 72.5,
		IsCorrect:       true,
	}))
	require.NoError(t, s.Attempts().Append(ctx, &Attempt{
		PuzzleID:   p.ID,
		UserAnswer: ".",
	}))

	got, err := s.Attempts().ByPuzzle(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 72.5, got[0].SimilarityScore)
	require.True(t, got[0].IsCorrect)
	require.False(t, got[1].IsCorrect)
}

func TestUsers_GuestEarnsNoCredit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	guest, err := s.Users().CreateGuest(ctx)
	require.NoError(t, err)
	require.True(t, guest.IsGuest)

	member, err := s.Users().Create(ctx, "himchan")
	require.NoError(t, err)

	require.NoError(t, s.Users().BumpSolved(ctx, guest.ID))
	require.NoError(t, s.Users().BumpSolved(ctx, member.ID))

	g, err := s.Users().Get(ctx, guest.ID)
	require.NoError(t, err)
	require.Zero(t, g.SolvedCount)

	m, err := s.Users().Get(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, 1, m.SolvedCount)
}

func TestNotes_CreateOrUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p := testPuzzle()
	require.NoError(t, s.Puzzles().Create(ctx, p))
	u, err := s.Users().Create(ctx, "himchan")
	require.NoError(t, err)

	_, err = s.Notes().Save(ctx, u.ID, p.ID, "첫 번째 오답")
	require.NoError(t, err)
	_, err = s.Notes().Save(ctx, u.ID, p.ID, "두 번째 오답")
	require.NoError(t, err)

	notes, err := s.Notes().ByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "두 번째 오답", notes[0].UserAnswer)
}

func TestRankings_BestRecordWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Rankings().Submit(ctx, "himchan", 10, 4, 1)
	require.NoError(t, err)

	// Worse score: ignored.
	e, err := s.Rankings().Submit(ctx, "himchan", 8, 8, 2)
	require.NoError(t, err)
	require.Equal(t, 10, e.Score)
	require.Equal(t, 4, e.MaxStreak)

	// Equal score, longer streak: replaces.
	e, err = s.Rankings().Submit(ctx, "himchan", 10, 7, 2)
	require.NoError(t, err)
	require.Equal(t, 7, e.MaxStreak)
	require.Equal(t, 2, e.Difficulty)

	// Higher score: replaces.
	e, err = s.Rankings().Submit(ctx, "himchan", 12, 3, 3)
	require.NoError(t, err)
	require.Equal(t, 12, e.Score)

	top, err := s.Rankings().Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
}

func TestSeed_Idempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Seed(ctx)
	require.NoError(t, err)
	require.Greater(t, n, 0)

	again, err := s.Seed(ctx)
	require.NoError(t, err)
	require.Zero(t, again)
}
