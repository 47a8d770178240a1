// Package words holds the answer and valid-guess lists and picks random answers.
package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"wordbank/internal/types"
)

// WordLength is the number of letters in every word.
const WordLength = 5

// ErrEmptyWordList is returned when no usable answer remains after loading.
var ErrEmptyWordList = errors.New("empty word list")

// Provider holds an immutable set of answers and valid guesses.
// All methods are safe for concurrent use.
type Provider struct {
	answers     []types.WordEntry
	accepted    []string
	answerSet   map[string]struct{}
	acceptedSet map[string]struct{}
	hints       map[string]string

	intn func(n int64) (int64, error)
}

// New builds a Provider from answer entries and valid guesses.
// Words are trimmed and uppercased; malformed and duplicate words are dropped.
// Answers missing from accepted are added to it.
func New(answers []types.WordEntry, accepted []string) (*Provider, error) {
	entries := lo.Map(answers, func(e types.WordEntry, _ int) types.WordEntry {
		return types.WordEntry{Word: Normalize(e.Word), Hint: strings.TrimSpace(e.Hint)}
	})
	entries = lo.Filter(entries, func(e types.WordEntry, _ int) bool {
		if !IsWellFormed(e.Word) {
			log.Printf("[WARN] Skipping answer %q: not %d letters", e.Word, WordLength)
			return false
		}
		return true
	})
	entries = lo.UniqBy(entries, func(e types.WordEntry) string { return e.Word })
	if len(entries) == 0 {
		return nil, ErrEmptyWordList
	}

	guesses := lo.Filter(lo.Map(accepted, func(w string, _ int) string { return Normalize(w) }), func(w string, _ int) bool {
		if !IsWellFormed(w) {
			log.Printf("[WARN] Skipping accepted word %q: not %d letters", w, WordLength)
			return false
		}
		return true
	})
	guesses = lo.Uniq(guesses)

	acceptedSet := make(map[string]struct{}, len(guesses)+len(entries))
	lo.ForEach(guesses, func(w string, _ int) {
		acceptedSet[w] = struct{}{}
	})
	lo.ForEach(entries, func(e types.WordEntry, _ int) {
		if _, ok := acceptedSet[e.Word]; !ok {
			log.Printf("[WARN] Answer %s missing from accepted words, adding it", e.Word)
			acceptedSet[e.Word] = struct{}{}
			guesses = append(guesses, e.Word)
		}
	})

	answerSet := make(map[string]struct{}, len(entries))
	lo.ForEach(entries, func(e types.WordEntry, _ int) {
		answerSet[e.Word] = struct{}{}
	})

	return &Provider{
		answers:     entries,
		accepted:    guesses,
		answerSet:   answerSet,
		acceptedSet: acceptedSet,
		hints:       buildHintMap(entries),
		intn:        cryptoIntn,
	}, nil
}

// Load decodes an answers document ({"words": [...]}) and an accepted-words
// array, then builds a Provider from them.
func Load(answersJSON, acceptedJSON []byte) (*Provider, error) {
	answers, err := DecodeAnswers(answersJSON)
	if err != nil {
		return nil, err
	}
	accepted, err := DecodeAccepted(acceptedJSON)
	if err != nil {
		return nil, err
	}
	return New(answers, accepted)
}

// LoadFiles reads both word files from disk and builds a Provider.
func LoadFiles(answersPath, acceptedPath string) (*Provider, error) {
	log.Printf("[INFO] Loading words from %s and %s", answersPath, acceptedPath)
	answersJSON, err := os.ReadFile(answersPath)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	acceptedJSON, err := os.ReadFile(acceptedPath)
	if err != nil {
		return nil, fmt.Errorf("read accepted words: %w", err)
	}
	return Load(answersJSON, acceptedJSON)
}

// DecodeAnswers parses an answers document without validating its words.
// Entries may be bare strings or {word, hint} objects.
func DecodeAnswers(data []byte) ([]types.WordEntry, error) {
	var wl types.WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return wl.Words, nil
}

// DecodeAccepted parses an accepted-words array without validating its words.
func DecodeAccepted(data []byte) ([]string, error) {
	var accepted []string
	if err := json.Unmarshal(data, &accepted); err != nil {
		return nil, fmt.Errorf("decode accepted words: %w", err)
	}
	return accepted, nil
}

// Normalize trims and uppercases a word for comparison.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// IsWellFormed reports whether word is exactly WordLength ASCII capital letters.
func IsWellFormed(word string) bool {
	return len(word) == WordLength && lo.EveryBy([]byte(word), func(b byte) bool {
		return b >= 'A' && b <= 'Z'
	})
}

func buildHintMap(entries []types.WordEntry) map[string]string {
	return lo.Associate(entries, func(e types.WordEntry) (string, string) {
		return e.Word, e.Hint
	})
}

// IsAnswer reports whether word is an answer candidate.
func (p *Provider) IsAnswer(word string) bool {
	_, ok := p.answerSet[Normalize(word)]
	return ok
}

// IsAccepted reports whether word is a valid guess.
func (p *Provider) IsAccepted(word string) bool {
	_, ok := p.acceptedSet[Normalize(word)]
	return ok
}

// Hint returns the hint for an answer, or "" if word is not an answer.
func (p *Provider) Hint(word string) string {
	return p.hints[Normalize(word)]
}

// Answers returns a copy of the answer list in load order.
func (p *Provider) Answers() []types.WordEntry {
	return slices.Clone(p.answers)
}

// Accepted returns a copy of the valid-guess list in load order.
func (p *Provider) Accepted() []string {
	return slices.Clone(p.accepted)
}

// Len returns the number of answers.
func (p *Provider) Len() int {
	return len(p.answers)
}

// AcceptedLen returns the number of valid guesses.
func (p *Provider) AcceptedLen() int {
	return len(p.accepted)
}
