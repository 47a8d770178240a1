package words

import (
	"fmt"
	"strings"

	"wordbank/internal/types"
)

// List names which word list a Problem was found in.
type List string

const (
	ListAnswers  List = "answers"
	ListAccepted List = "accepted"
)

// Problem reasons.
const (
	ReasonMalformed   = "not 5 letters"
	ReasonDuplicate   = "duplicate"
	ReasonMissingHint = "missing hint"
	ReasonNotAccepted = "not in accepted words"
)

// Problem is a single integrity issue found by Lint.
type Problem struct {
	List   List
	Word   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %q: %s", p.List, p.Word, p.Reason)
}

// Lint checks raw word lists and returns every problem found, in list order.
// Answers are checked before accepted words.
func Lint(answers []types.WordEntry, accepted []string) []Problem {
	var problems []Problem

	acceptedSet := make(map[string]struct{}, len(accepted))
	seenAccepted := make(map[string]struct{}, len(accepted))
	var acceptedProblems []Problem
	for _, raw := range accepted {
		w := Normalize(raw)
		if !IsWellFormed(w) {
			acceptedProblems = append(acceptedProblems, Problem{ListAccepted, raw, ReasonMalformed})
			continue
		}
		if _, ok := seenAccepted[w]; ok {
			acceptedProblems = append(acceptedProblems, Problem{ListAccepted, raw, ReasonDuplicate})
			continue
		}
		seenAccepted[w] = struct{}{}
		acceptedSet[w] = struct{}{}
	}

	seen := make(map[string]struct{}, len(answers))
	for _, e := range answers {
		w := Normalize(e.Word)
		if !IsWellFormed(w) {
			problems = append(problems, Problem{ListAnswers, e.Word, ReasonMalformed})
			continue
		}
		if _, ok := seen[w]; ok {
			problems = append(problems, Problem{ListAnswers, e.Word, ReasonDuplicate})
			continue
		}
		seen[w] = struct{}{}
		if strings.TrimSpace(e.Hint) == "" {
			problems = append(problems, Problem{ListAnswers, e.Word, ReasonMissingHint})
		}
		if _, ok := acceptedSet[w]; !ok {
			problems = append(problems, Problem{ListAnswers, e.Word, ReasonNotAccepted})
		}
	}

	return append(problems, acceptedProblems...)
}
