package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("tea\n\n  sun  \nnest\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d: %v", len(words), words)
	}
	if words[1] != "sun" {
		t.Fatalf("expected trimmed word, got %q", words[1])
	}
}

func TestLoadWordsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestLoadUserListsMissingDir(t *testing.T) {
	lists, err := LoadUserLists(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("expected missing directory to be tolerated, got %v", err)
	}
	if len(lists) != 0 {
		t.Fatalf("expected no lists, got %d", len(lists))
	}
}

func TestLoadUserLists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.txt"), []byte("tea\nsun\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	lists, err := LoadUserLists(dir)
	if err != nil {
		t.Fatalf("LoadUserLists failed: %v", err)
	}
	if len(lists) != 1 {
		t.Fatalf("expected 1 list, got %d", len(lists))
	}
	if lists[0].Name != "custom" {
		t.Fatalf("expected list named custom, got %q", lists[0].Name)
	}
	if len(lists[0].Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(lists[0].Words))
	}
}

func TestEmbeddedLessons(t *testing.T) {
	lessons, err := EmbeddedLessons()
	if err != nil {
		t.Fatalf("EmbeddedLessons failed: %v", err)
	}
	if len(lessons) != 5 {
		t.Fatalf("expected 5 lessons, got %d", len(lessons))
	}
	for _, lesson := range lessons {
		if lesson.Name == "" {
			t.Fatalf("expected lesson name")
		}
		if len(lesson.Words) == 0 {
			t.Fatalf("expected words in lesson %q", lesson.Name)
		}
	}

	filter := FilterForLevel(1)
	for _, word := range lessons[0].Words {
		if !filter(word) {
			t.Fatalf("lesson 1 word %q uses keys outside its level", word)
		}
	}
}
