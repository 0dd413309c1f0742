package locate

import (
	"fmt"
	"math"
)

// NotFoundSentinel is the literal value consumers expect in the handle
// and URL fields when no profile was accepted. Preserved bit-for-bit
// from the original API surface.
const NotFoundSentinel = "No Instagram found"

// Report is the consumer-facing wire format for a verdict. Field names
// are a compatibility contract with existing consumers and keep the
// instagram_ prefix regardless of target platform.
type Report struct {
	Handle     string      `json:"instagram_handle"`
	URL        string      `json:"instagram_url"`
	Confidence float64     `json:"match_confidence"`
	Status     Status       `json:"match_status"`
	Debug      *ReportDebug `json:"debug_info,omitempty"`
}

// ReportDebug summarizes the run for the debug_info object.
type ReportDebug struct {
	QueriesTried    int          `json:"queries_tried"`
	CandidatesFound int          `json:"candidates_found"`
	BestScore       string       `json:"best_score,omitempty"`
	ScoreComponents *ScoreResult `json:"score_components,omitempty"`
	Reason          string       `json:"reason"`
}

// Report renders the verdict in the wire format. Accepted and review
// verdicts carry the handle as "@handle"; rejected verdicts carry the
// not-found sentinel in both the handle and URL fields.
func (v *Verdict) Report() Report {
	r := Report{
		Handle:     NotFoundSentinel,
		URL:        NotFoundSentinel,
		Confidence: round3(v.Confidence),
		Status:     v.Status,
		Debug: &ReportDebug{
			QueriesTried:    len(v.Trace.Queries),
			CandidatesFound: v.Trace.CandidatesFound,
			Reason:          v.Reason,
		},
	}

	if v.Best != nil {
		r.Debug.BestScore = fmt.Sprintf("%.3f", v.Best.Score.Final)
		score := v.Best.Score
		r.Debug.ScoreComponents = &score
	}

	if v.Status == StatusAccepted || v.Status == StatusReview {
		r.Handle = "@" + v.Best.Handle
		r.URL = v.Best.ProfileURL
	}

	return r
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
