package utils

import "testing"

func TestPRNGDeterministicWithSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("seeded generators diverged at step %d", i)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(7)

	if got := s.ChooseWeighted(nil); got != "" {
		t.Errorf("empty table: got %q, want empty", got)
	}
	if got := s.ChooseWeighted([]WeightedEntry{{"a", 0}, {"b", 0}}); got != "" {
		t.Errorf("zero weights: got %q, want empty", got)
	}

	// Единственный кандидат с положительным весом всегда выбирается.
	for i := 0; i < 50; i++ {
		got := s.ChooseWeighted([]WeightedEntry{{"a", 0}, {"b", 3}, {"c", 0}})
		if got != "b" {
			t.Fatalf("got %q, want b", got)
		}
	}

	// Доминирующий вес должен выбираться чаще остальных.
	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		counts[s.ChooseWeighted([]WeightedEntry{{"heavy", 90}, {"light", 10}})]++
	}
	if counts["heavy"] <= counts["light"] {
		t.Errorf("heavy=%d light=%d, want heavy dominant", counts["heavy"], counts["light"])
	}
}
