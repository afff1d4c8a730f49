package wordlist

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"embed"
	"fmt"
	"strings"

	"github.com/adaptype/adaptype/internal/model"
)

//go:embed lessons/*.txt.gz
var lessonData embed.FS

// Lesson files are ordered from smallest key set to the full alphabet.
var lessonFiles = []struct {
	name string
	path string
}{
	{"Home Row - 8 keys", "lessons/level1.txt.gz"},
	{"Home Row - 10 keys", "lessons/level2.txt.gz"},
	{"Home Row + 8 keys", "lessons/level3.txt.gz"},
	{"Home Row + 8 more keys", "lessons/level4.txt.gz"},
	{"Full Alphabet", "lessons/level5.txt.gz"},
}

// EmbeddedLessons decompresses the built-in leveled lesson lists.
func EmbeddedLessons() ([]model.WordList, error) {
	lists := make([]model.WordList, 0, len(lessonFiles))
	for _, lesson := range lessonFiles {
		raw, err := lessonData.ReadFile(lesson.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read lesson %s: %w", lesson.name, err)
		}
		words, err := decompressWords(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress lesson %s: %w", lesson.name, err)
		}
		lists = append(lists, model.WordList{Name: lesson.name, Words: words})
	}
	return lists, nil
}

func decompressWords(raw []byte) ([]string, error) {
	reader, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			// Best-effort close for in-memory reader.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(reader)
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
	return words, nil
}
