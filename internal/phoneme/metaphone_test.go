package phoneme

import (
	"errors"
	"strings"
	"testing"
)

func TestToPhonemesHomophones(t *testing.T) {
	m := New()

	pairs := [][2]string{
		{"cat", "katt"},
		{"night", "nite"},
		{"phone", "fone"},
	}

	for _, p := range pairs {
		a, err := m.ToPhonemes(p[0])
		if err != nil {
			t.Fatalf("ToPhonemes(%q): %v", p[0], err)
		}
		b, err := m.ToPhonemes(p[1])
		if err != nil {
			t.Fatalf("ToPhonemes(%q): %v", p[1], err)
		}
		if a != b {
			t.Errorf("expected %q and %q to share phonemes, got %q and %q", p[0], p[1], a, b)
		}
	}
}

func TestToPhonemesMultipleWords(t *testing.T) {
	m := New()

	out, err := m.ToPhonemes("the cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(strings.Fields(out)) != 2 {
		t.Errorf("expected one code per word, got %q", out)
	}
	if out != strings.ToLower(out) {
		t.Errorf("expected lowercase codes, got %q", out)
	}
}

func TestToPhonemesDeterministic(t *testing.T) {
	m := New()

	first, err := m.ToPhonemes("ubiquitous")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := m.ToPhonemes("ubiquitous")
	if first != second {
		t.Errorf("expected stable output, got %q then %q", first, second)
	}
}

func TestToPhonemesEmptyInput(t *testing.T) {
	m := New()

	if _, err := m.ToPhonemes(""); !errors.Is(err, ErrNoPhonemes) {
		t.Fatalf("expected ErrNoPhonemes, got %v", err)
	}
	if _, err := m.ToPhonemes("   "); !errors.Is(err, ErrNoPhonemes) {
		t.Fatalf("expected ErrNoPhonemes for whitespace, got %v", err)
	}
}
