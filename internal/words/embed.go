package words

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"wordbank/internal/types"
)

//go:embed data/words.json
var embeddedAnswers []byte

//go:embed data/accepted_words.json
var embeddedAccepted []byte

var defaultProvider = sync.OnceValue(func() *Provider {
	p, err := Load(embeddedAnswers, embeddedAccepted)
	if err != nil {
		panic(fmt.Sprintf("words: embedded lists: %v", err))
	}
	return p
})

// Default returns the provider built from the lists compiled into the binary.
func Default() *Provider {
	return defaultProvider()
}

// RandomWord returns a uniformly random answer from the built-in lists.
func RandomWord() types.WordEntry {
	return Default().RandomWord(context.Background())
}

// EmbeddedLists decodes the built-in lists as stored, before normalization.
func EmbeddedLists() ([]types.WordEntry, []string, error) {
	answers, err := DecodeAnswers(embeddedAnswers)
	if err != nil {
		return nil, nil, err
	}
	accepted, err := DecodeAccepted(embeddedAccepted)
	if err != nil {
		return nil, nil, err
	}
	return answers, accepted, nil
}
