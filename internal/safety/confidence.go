// ABOUTME: Confidence gate deciding whether retrieval supports an answer
// ABOUTME: Weak retrievals are rejected with a reason instead of guessed at
package safety

import (
	"github.com/aasim-shah/portfolio-assistant/internal/models"
)

// Gate rejection reasons
const (
	ReasonSufficient     = "sufficient"
	ReasonNoResults      = "no_results"
	ReasonLowConfidence  = "low_confidence"
	ReasonBelowThreshold = "below_threshold"
)

// maybeRelevantScore separates "found something vaguely related" from
// "found nothing usable" when all results fall below the gate threshold.
const maybeRelevantScore = 0.5

// Gate evaluates retrieval quality before generation is allowed
type Gate struct {
	MinScore   float64
	MinResults int
}

// DefaultGate returns the standard gate settings
func DefaultGate() Gate {
	return Gate{MinScore: 0.70, MinResults: 1}
}

// GateResult holds the gate's verdict and the results that passed it
type GateResult struct {
	Passed       bool
	Reason       string
	Valid        []models.SearchResult
	HighestScore float64
}

// Evaluate filters results against the gate threshold and decides whether
// generation may proceed.
func (g Gate) Evaluate(results []models.SearchResult) GateResult {
	if len(results) == 0 {
		return GateResult{Reason: ReasonNoResults}
	}

	var highest float64
	valid := make([]models.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Score > highest {
			highest = r.Score
		}
		if r.Score >= g.MinScore {
			valid = append(valid, r)
		}
	}

	if len(valid) >= g.MinResults {
		return GateResult{
			Passed:       true,
			Reason:       ReasonSufficient,
			Valid:        valid,
			HighestScore: highest,
		}
	}

	reason := ReasonBelowThreshold
	if highest > maybeRelevantScore {
		reason = ReasonLowConfidence
	}
	return GateResult{Reason: reason, HighestScore: highest}
}
