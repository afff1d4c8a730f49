// Package wordlist loads word lists from embedded lessons and user files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adaptype/adaptype/internal/model"
)

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadUserLists reads every .txt file in dir as a word list named after the
// file. A missing directory yields no lists and no error.
func LoadUserLists(dir string) ([]model.WordList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	lists := make([]model.WordList, 0, len(names))
	for _, name := range names {
		words, err := LoadWords(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		lists = append(lists, model.WordList{
			Name:  strings.TrimSuffix(name, ".txt"),
			Words: words,
		})
	}
	return lists, nil
}

// LoadLists returns the embedded lessons followed by any user lists from dir.
func LoadLists(dir string) ([]model.WordList, error) {
	lists, err := EmbeddedLessons()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded lessons: %w", err)
	}
	userLists, err := LoadUserLists(dir)
	if err != nil {
		return nil, err
	}
	return append(lists, userLists...), nil
}
