package detect

import "strings"

// Confidence expresses how trustworthy a detection is
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// patternResult is the outcome of one pass over the rule table.
type patternResult struct {
	Language   Tag
	Confidence Confidence
	MaxScore   int
	Scores     map[Tag]int
}

// scorePatterns evaluates the rule table against code. The winner is the
// first language in table order to reach the maximum score; a zero maximum
// forces {text, low}.
func scorePatterns(code string) patternResult {
	scores := make(map[Tag]int, len(ruleTable))

	winner := TagText
	maxScore := 0
	for _, rule := range ruleTable {
		score := 0
		for _, lit := range rule.strong {
			if strings.Contains(code, lit) {
				score += 3
			}
		}
		for _, lit := range rule.medium {
			if strings.Contains(code, lit) {
				score += 2
			}
		}
		weak := 0
		for _, lit := range rule.weak {
			if strings.Contains(code, lit) {
				weak++
			}
		}
		score += min(weak, weakCap)

		scores[rule.tag] = score
		if score > maxScore {
			maxScore = score
			winner = rule.tag
		}
	}

	return patternResult{
		Language:   winner,
		Confidence: scoreConfidence(maxScore),
		MaxScore:   maxScore,
		Scores:     scores,
	}
}

func scoreConfidence(score int) Confidence {
	switch {
	case score >= 6:
		return ConfidenceHigh
	case score >= 3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// signalConfidence rescans code for the high-signal literals of tag.
// Used on the lexical-guesser path, where the pattern score does not apply.
func signalConfidence(tag Tag, code string) Confidence {
	matches := 0
	for _, lit := range signalLiterals[tag] {
		if strings.Contains(code, lit) {
			matches++
		}
	}
	switch {
	case matches >= 3:
		return ConfidenceHigh
	case matches >= 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
