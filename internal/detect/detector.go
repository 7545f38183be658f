package detect

import (
	"log/slog"
	"strings"
)

// Provenance values reported in Result.DetectedBy.
const (
	DetectedByShortInput        = "short-input"
	DetectedByPatternPrimary    = "pattern-primary"
	DetectedByPatternFallback   = "pattern-fallback"
	DetectedByLexicalNormalized = "lexical-normalized"
)

// minDetectableLength is the shortest trimmed input worth analyzing.
const minDetectableLength = 10

// Result is the final answer of a detection run.
type Result struct {
	Language      Tag         `json:"language"`
	Confidence    Confidence  `json:"confidence"`
	DetectedBy    string      `json:"detected_by"`
	PatternScores map[Tag]int `json:"pattern_scores,omitempty"`
	RawGuess      string      `json:"raw_detection,omitempty"`
}

// Detector reconciles the pattern scorer with the lexical guesser.
// It is stateless and safe for concurrent use.
type Detector struct {
	guesser Guesser
	logger  *slog.Logger
}

func NewDetector(guesser Guesser, logger *slog.Logger) *Detector {
	return &Detector{guesser: guesser, logger: logger}
}

// Detect classifies a code snippet. The pattern scorer is preferred whenever
// it is reasonably confident; otherwise the lexical guesser's answer is
// normalized into a canonical tag. A guesser failure falls back to the
// pattern result and is never surfaced to the caller.
func (d *Detector) Detect(code string) Result {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) < minDetectableLength {
		return Result{Language: TagText, Confidence: ConfidenceLow, DetectedBy: DetectedByShortInput}
	}

	pattern := scorePatterns(trimmed)

	rawGuess, err := d.guesser.Guess(trimmed)
	if err != nil {
		d.logger.Debug("lexical guesser failed, using pattern result",
			slog.String("error", err.Error()),
			slog.String("language", string(pattern.Language)))
		return Result{
			Language:      pattern.Language,
			Confidence:    pattern.Confidence,
			DetectedBy:    DetectedByPatternFallback,
			PatternScores: pattern.Scores,
		}
	}

	if pattern.Confidence != ConfidenceLow && pattern.Language != TagText {
		return Result{
			Language:      pattern.Language,
			Confidence:    pattern.Confidence,
			DetectedBy:    DetectedByPatternPrimary,
			PatternScores: pattern.Scores,
			RawGuess:      rawGuess,
		}
	}

	language := normalizeGuess(rawGuess, trimmed)
	return Result{
		Language:      language,
		Confidence:    signalConfidence(language, trimmed),
		DetectedBy:    DetectedByLexicalNormalized,
		PatternScores: pattern.Scores,
		RawGuess:      rawGuess,
	}
}

// cppOverrideLiterals correct a known guesser confusion: C-family code with
// braces and colons is sometimes reported as CSS.
var cppOverrideLiterals = []string{"#include", "std::", "cout", "int main"}

// cPromotionLiterals decide whether a generic "c" guess is close enough to
// C to fold into the cpp tag for formatting purposes.
var cPromotionLiterals = []string{"#include", "stdio.h", "printf"}

// normalizeGuess maps a raw guesser name to a canonical tag by ordered
// fragment matching. The order mirrors the disambiguation rules: css is
// re-checked against C++ indicators before it wins, and a bare "c" only
// resolves (to cpp) when C-style include/print patterns are present.
func normalizeGuess(rawGuess, code string) Tag {
	name := strings.ToLower(rawGuess)

	switch {
	case strings.Contains(name, "python"):
		return TagPython
	case containsAny(name, "javascript", "ecmascript", "js"):
		return TagJavaScript
	case strings.Contains(name, "html"):
		return TagHTML
	case strings.Contains(name, "css"):
		if containsAny(code, cppOverrideLiterals...) {
			return TagCPP
		}
		return TagCSS
	case containsAny(name, "c++", "cpp"):
		return TagCPP
	case strings.Contains(name, "c") && containsAny(code, cPromotionLiterals...):
		// C folds into cpp here; the formatter keeps a separate c tag.
		return TagCPP
	case strings.Contains(name, "java"):
		return TagJava
	case containsAny(name, "c#", "csharp"):
		return TagCSharp
	case strings.Contains(name, "go"):
		return TagGo
	case strings.Contains(name, "ruby"):
		return TagRuby
	case strings.Contains(name, "php"):
		return TagPHP
	case strings.Contains(name, "typescript"):
		return TagTypeScript
	case strings.Contains(name, "json"):
		return TagJSON
	case strings.Contains(name, "xml"):
		return TagXML
	default:
		return TagText
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
