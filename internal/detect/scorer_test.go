package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreStrongPythonLiterals(t *testing.T) {
	code := "def foo():\n    import os\n    print(os)"

	result := scorePatterns(code)

	assert.Equal(t, TagPython, result.Language)
	assert.GreaterOrEqual(t, result.Scores[TagPython], 9, "three strong hits score at least 9")
	assert.Equal(t, ConfidenceHigh, result.Confidence)
}

func TestScoreConfidenceThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  Confidence
	}{
		{"zero is low", 0, ConfidenceLow},
		{"one is low", 1, ConfidenceLow},
		{"two is low", 2, ConfidenceLow},
		{"three is medium", 3, ConfidenceMedium},
		{"five is medium", 5, ConfidenceMedium},
		{"six is high", 6, ConfidenceHigh},
		{"twelve is high", 12, ConfidenceHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreConfidence(tt.score))
		})
	}
}

func TestScoreNoMatchesForcesText(t *testing.T) {
	result := scorePatterns("zzzz qqqq wwww")

	assert.Equal(t, TagText, result.Language)
	assert.Equal(t, ConfidenceLow, result.Confidence)
	assert.Equal(t, 0, result.MaxScore)
}

func TestScoreWeakContributionCapped(t *testing.T) {
	// Six distinct CSS weak literals, nothing stronger for css.
	result := scorePatterns("x { } rule 50px 10%")

	assert.LessOrEqual(t, result.Scores[TagCSS], weakCap)
}

func TestScoreTieBreakFirstSeenWins(t *testing.T) {
	// "def " is a strong literal for both python and ruby; python comes
	// first in the rule table so it must win the tie, every time.
	code := "def something"

	first := scorePatterns(code)
	assert.Equal(t, first.Scores[TagPython], first.Scores[TagRuby], "tie premise")
	assert.Equal(t, TagPython, first.Language)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Language, scorePatterns(code).Language)
	}
}

func TestSignalConfidence(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		code string
		want Confidence
	}{
		{"three python signals", TagPython, "def x():\n    import os\n    print(os)", ConfidenceHigh},
		{"one go signal", TagGo, "package main only", ConfidenceMedium},
		{"no signals", TagJava, "nothing relevant here", ConfidenceLow},
		{"unknown tag has no signals", TagText, "def anything", ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, signalConfidence(tt.tag, tt.code))
		})
	}
}
