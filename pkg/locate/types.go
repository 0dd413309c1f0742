package locate

// Candidate is a search result that passed profile validation and is
// eligible for scoring. Candidates are owned by the engine run that
// created them and are not mutated after scoring.
type Candidate struct {
	// Handle is the lowercased, validated platform username.
	Handle string
	// ProfileURL is the link as returned by the search provider.
	ProfileURL string
	// Title and Snippet are the source result's text, kept for
	// scoring and observability.
	Title   string
	Snippet string
	// Query and QueryRank identify the originating search query
	// (rank is 1-based within the query plan).
	Query     string
	QueryRank int

	Score ScoreResult
}

// ScoreResult holds the weighted composite confidence and its
// components. Every component is retained for observability.
type ScoreResult struct {
	Final    float64 `json:"finalScore"`
	Base     float64 `json:"baseScore"`
	Name     float64 `json:"nameScore"`
	Username float64 `json:"usernameScore"`
	Location float64 `json:"locationScore"`
	Contact  float64 `json:"contactScore"`
}

// Status is the verdict tier for a lookup.
type Status string

// Verdict tiers. StatusRejected doubles as the not-found outcome; the
// wire format names it "no_instagram".
const (
	StatusAccepted Status = "accepted"
	StatusReview   Status = "review"
	StatusRejected Status = "no_instagram"
)

// Verdict is the outcome of one engine run.
type Verdict struct {
	Status Status
	// Best is the top-ranked candidate, nil when none survived
	// extraction.
	Best       *Candidate
	Confidence float64
	Reason     string
	Trace      DebugTrace
}

// QueryOutcome records what one issued query produced. Err is the
// error text for failed queries, empty on success.
type QueryOutcome struct {
	Query   string
	Results int
	Err     string
}

// DebugTrace captures the engine's work for observability. It never
// influences the decision.
type DebugTrace struct {
	Queries       []string
	Outcomes      []QueryOutcome
	TopCandidates []Candidate
	// CandidatesFound counts all surviving candidates, not just the
	// retained top few.
	CandidatesFound int
}
