package detect

import (
	"errors"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ErrNoMatch is returned when the lexical guesser cannot name a language.
var ErrNoMatch = errors.New("no language match")

// Guesser produces a free-text best-guess language name for a code snippet.
type Guesser interface {
	Guess(code string) (string, error)
}

// enryGuesser classifies snippet content with go-enry. It has no filename
// to work with, so detection runs on content alone.
type enryGuesser struct{}

// NewEnryGuesser returns the default content-based guesser.
func NewEnryGuesser() Guesser {
	return enryGuesser{}
}

func (enryGuesser) Guess(code string) (name string, err error) {
	// enry is pure Go but classifies arbitrary input; contain any panic
	// as a recoverable no-match so the caller falls back cleanly.
	defer func() {
		if r := recover(); r != nil {
			name = ""
			err = ErrNoMatch
		}
	}()

	lang := enry.GetLanguage("", []byte(code))
	if lang == enry.OtherLanguage {
		return "", ErrNoMatch
	}
	return strings.ToLower(lang), nil
}
