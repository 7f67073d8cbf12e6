package wordbank

import "testing"

func TestPick_KnownCategory(t *testing.T) {
	b := New()

	members := make(map[string]bool)
	for _, term := range b.Pool(CategoryPolitics) {
		members[term.Word] = true
	}

	for range 50 {
		term, err := b.Pick(CategoryPolitics)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !members[term.Word] {
			t.Fatalf("picked %q, not in the Politics pool", term.Word)
		}
		if term.Gloss == "" {
			t.Fatalf("term %q has no gloss", term.Word)
		}
	}
}

func TestPick_UnknownCategoryFallsBack(t *testing.T) {
	b := New()

	members := make(map[string]bool)
	for _, term := range b.Pool("NoSuchCategory") {
		members[term.Word] = true
	}
	if len(members) == 0 {
		t.Fatal("fallback pool is empty")
	}

	term, err := b.Pick("NoSuchCategory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !members[term.Word] {
		t.Errorf("picked %q, not in the fallback pool", term.Word)
	}
}

func TestPick_FallbackIsConcatenation(t *testing.T) {
	b := New()
	got := len(b.Pool("NoSuchCategory"))
	want := len(b.Pool(CategorySociety)) + len(b.Pool(CategoryCulture))
	if got != want {
		t.Errorf("fallback pool size = %d, want %d (Society + Culture)", got, want)
	}
}

func TestPick_EmptyPoolFailsLoudly(t *testing.T) {
	b := &Bank{pools: map[string][]Term{}, fallback: nil}
	if _, err := b.Pick("Politics"); err == nil {
		t.Fatal("expected error for empty resolved pool")
	}
}

func TestPool_ReturnsCopy(t *testing.T) {
	b := New()
	p := b.Pool(CategoryScience)
	p[0] = Term{Word: "변조됨"}
	if b.Pool(CategoryScience)[0].Word == "변조됨" {
		t.Fatal("Pool exposed internal state")
	}
}

func TestCategories_AllHavePools(t *testing.T) {
	b := New()
	for _, c := range Categories() {
		if !b.Known(c) {
			t.Errorf("category %q has no pool", c)
		}
		if len(b.Pool(c)) == 0 {
			t.Errorf("category %q pool is empty", c)
		}
	}
}
