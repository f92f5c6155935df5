package highscore

import (
	"path/filepath"
	"sync"
	"testing"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.db")
	s := Open(path, nil)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func scoresOf(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestSubmitRanksDescending(t *testing.T) {
	s, _ := openTestStore(t)

	for _, sc := range []int{50, 10, 90, 30} {
		if !s.Submit(sc, 1) {
			t.Fatalf("submit %d on a short list should be accepted", sc)
		}
	}

	got := scoresOf(s.Top(MaxEntries))
	want := []int{90, 50, 30, 10}
	if len(got) != len(want) {
		t.Fatalf("stored %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stored %v, want %v", got, want)
		}
	}
	if s.Best() != 90 {
		t.Errorf("best = %d, want 90", s.Best())
	}
}

func TestFullListRejectsLowScores(t *testing.T) {
	s, _ := openTestStore(t)

	for i := 1; i <= MaxEntries; i++ {
		s.Submit(i*100, 1)
	}

	if s.WouldBeHighScore(50) {
		t.Error("a score below a full list should not qualify")
	}
	if s.Submit(50, 1) {
		t.Error("submit below a full list should report false")
	}
	if got := len(s.Top(MaxEntries)); got != MaxEntries {
		t.Errorf("list length %d, want %d", got, MaxEntries)
	}
	if s.Top(MaxEntries)[MaxEntries-1].Score != 100 {
		t.Error("a rejected submission must leave the list unchanged")
	}
}

func TestFullListPrunesLastPlace(t *testing.T) {
	s, _ := openTestStore(t)

	for i := 1; i <= MaxEntries; i++ {
		s.Submit(i*100, 1)
	}

	if !s.WouldBeHighScore(150) {
		t.Error("beating last place should qualify")
	}
	if !s.Submit(150, 2) {
		t.Fatal("submit beating last place should be accepted")
	}

	got := scoresOf(s.Top(MaxEntries))
	if len(got) != MaxEntries {
		t.Fatalf("list length %d, want %d", len(got), MaxEntries)
	}
	if got[MaxEntries-1] != 150 {
		t.Errorf("new last place = %d, want 150", got[MaxEntries-1])
	}
	for _, sc := range got {
		if sc == 100 {
			t.Error("the displaced entry should be gone")
		}
	}
}

func TestWouldBeHighScoreOnEmptyList(t *testing.T) {
	s, _ := openTestStore(t)
	if !s.WouldBeHighScore(0) {
		t.Error("any score qualifies while the list is short")
	}
	if s.Best() != 0 {
		t.Errorf("best on empty list = %d, want 0", s.Best())
	}
}

func TestScoresSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s := Open(path, nil)
	s.Submit(420, 3)
	s.Submit(90, 1)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := Open(path, nil)
	defer reopened.Close()

	got := scoresOf(reopened.Top(MaxEntries))
	if len(got) != 2 || got[0] != 420 || got[1] != 90 {
		t.Errorf("scores after reopen = %v, want [420 90]", got)
	}
	if reopened.Top(1)[0].Level != 3 {
		t.Error("levels should persist alongside scores")
	}
}

func TestDegradedModeKeepsWorking(t *testing.T) {
	// A path inside a directory that does not exist cannot be opened, so
	// the store falls back to memory.
	path := filepath.Join(t.TempDir(), "missing", "sub", "scores.db")
	s := Open(path, nil)
	defer s.Close()

	if !s.Submit(200, 2) {
		t.Fatal("in-memory submit should be accepted")
	}
	s.Submit(300, 2)
	s.Submit(100, 1)

	got := scoresOf(s.Top(MaxEntries))
	if len(got) != 3 || got[0] != 300 || got[2] != 100 {
		t.Errorf("in-memory ranking = %v, want [300 200 100]", got)
	}
	if s.Best() != 300 {
		t.Errorf("best = %d, want 300", s.Best())
	}
}

// One store is shared by every SSH session, so the degraded in-memory
// mode sees submits and reads from concurrent goroutines. Run with the
// race detector.
func TestDegradedModeIsConcurrencySafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scores.db")
	s := Open(path, nil)
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.Submit(base*1000+j, 1)
				s.Top(MaxEntries)
				s.Best()
				s.WouldBeHighScore(base)
			}
		}(i)
	}
	wg.Wait()

	got := s.Top(MaxEntries)
	if len(got) != MaxEntries {
		t.Fatalf("list length %d, want %d", len(got), MaxEntries)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("list out of order at %d: %d after %d", i, got[i].Score, got[i-1].Score)
		}
	}
	if s.Best() != 7*1000+49 {
		t.Errorf("best = %d, want %d", s.Best(), 7*1000+49)
	}
}

func TestTopLimitsResults(t *testing.T) {
	s, _ := openTestStore(t)
	for i := 1; i <= 5; i++ {
		s.Submit(i*10, 1)
	}
	if got := len(s.Top(3)); got != 3 {
		t.Errorf("Top(3) returned %d entries", got)
	}
	if got := len(s.Top(0)); got != 5 {
		t.Errorf("Top(0) should return everything, got %d", got)
	}
}
