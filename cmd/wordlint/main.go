package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"wordbank/internal/types"
	"wordbank/internal/words"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run lints the given word files, or the built-in lists when no flag is set,
// and returns the process exit code.
func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("wordlint", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		answersFile  = fs.String("answers", "", "Answers file ({\"words\": [...]}, entries are strings or {word, hint})")
		acceptedFile = fs.String("accepted", "", "Accepted words file (JSON array)")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if (*answersFile == "") != (*acceptedFile == "") {
		fmt.Fprintln(out, "Usage: wordlint [-answers=<file> -accepted=<file>]")
		return 2
	}

	answers, accepted, err := readLists(*answersFile, *acceptedFile)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}

	problems := words.Lint(answers, accepted)
	for _, p := range problems {
		fmt.Fprintln(out, p)
	}
	if len(problems) > 0 {
		fmt.Fprintf(out, "problems found: %d\n", len(problems))
		return 1
	}

	fmt.Fprintf(out, "OK: %d answers, %d accepted words\n", len(answers), len(accepted))
	return 0
}

func readLists(answersFile, acceptedFile string) ([]types.WordEntry, []string, error) {
	if answersFile == "" {
		return words.EmbeddedLists()
	}

	data, err := os.ReadFile(answersFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read answers: %w", err)
	}
	answers, err := words.DecodeAnswers(data)
	if err != nil {
		return nil, nil, err
	}

	data, err = os.ReadFile(acceptedFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read accepted words: %w", err)
	}
	accepted, err := words.DecodeAccepted(data)
	if err != nil {
		return nil, nil, err
	}
	return answers, accepted, nil
}
