package summarize

import (
	_ "embed"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/tldr"
)

//go:embed stop_words.txt
var embeddedStopWords string

// StopWords is a set of common words excluded from scoring.
//
// Load replaces the contents; once loaded the set is read-only and safe
// to share between goroutines. A zero or nil StopWords contains nothing,
// so no word is filtered.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords returns a set holding the given words.
func NewStopWords(words ...string) *StopWords {
	s := &StopWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[w] = struct{}{}
	}
	return s
}

// Load reads a line-delimited word list and replaces the current contents.
// Lines are separated by "\r\n"; a bare "\n" is accepted too.
// On error the previous contents are kept and a *tldr.ResourceLoadError
// is returned.
func (s *StopWords) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &tldr.ResourceLoadError{Resource: "stop words", Err: err}
	}
	words, err := parseStopWords(data)
	if err != nil {
		return &tldr.ResourceLoadError{Resource: "stop words", Err: err}
	}
	s.words = words
	return nil
}

func parseStopWords(data []byte) (map[string]struct{}, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("word list is not valid UTF-8")
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("word list is empty")
	}
	lines := strings.Split(string(data), "\n")
	words := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		words[strings.TrimSuffix(line, "\r")] = struct{}{}
	}
	return words, nil
}

// Contains reports whether word is in the set.
func (s *StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

var defaultStopWords = sync.OnceValues(func() (*StopWords, error) {
	s := &StopWords{}
	if err := s.Load(strings.NewReader(embeddedStopWords)); err != nil {
		return nil, err
	}
	return s, nil
})

// DefaultStopWords returns the bundled English stop-word list.
// The list is loaded once per process and shared.
func DefaultStopWords() (*StopWords, error) {
	return defaultStopWords()
}

// LoadStopWords loads a stop-word list from path, or returns the bundled
// list when path is empty.
func LoadStopWords(path string) (*StopWords, error) {
	if path == "" {
		return DefaultStopWords()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &tldr.ResourceLoadError{Resource: "stop words", Err: err}
	}
	defer f.Close()

	s := &StopWords{}
	if err := s.Load(f); err != nil {
		return nil, err
	}
	return s, nil
}
