package types

import (
	"bytes"
	"encoding/json"
)

// WordEntry is a single candidate word, optionally annotated with a hint.
type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// UnmarshalJSON accepts either a {word, hint} object or a bare string,
// which becomes an entry with no hint.
func (e *WordEntry) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		var word string
		if err := json.Unmarshal(trimmed, &word); err != nil {
			return err
		}
		*e = WordEntry{Word: word}
		return nil
	}

	type entry WordEntry
	var v entry
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = WordEntry(v)
	return nil
}

// WordList is the JSON document holding answer candidates.
type WordList struct {
	Words []WordEntry `json:"words"`
}
