// Package locate finds a business's official social-media profile by
// issuing prioritized search queries, scoring the candidate profiles
// each query surfaces, and rendering an accept/review/reject verdict.
//
// Basic usage:
//
//	client, err := search.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine := locate.New(client)
//	verdict, err := engine.Run(ctx, identity.Business{
//	    Name: "Joe's Pizza", City: "Austin", State: "TX",
//	})
//
// One Run owns all state it creates, so a single engine may serve
// concurrent lookups for different businesses.
package locate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"

	"github.com/codeGROOVE-dev/bizlocator/pkg/identity"
	"github.com/codeGROOVE-dev/bizlocator/pkg/platform"
	"github.com/codeGROOVE-dev/bizlocator/pkg/queryplan"
	"github.com/codeGROOVE-dev/bizlocator/pkg/search"
)

// ErrMissingName is returned by Run when the identity has no business
// name. Surfaced before any query is issued.
var ErrMissingName = errors.New("business name is required")

// Default decision thresholds. Overridable per engine via
// WithThresholds.
const (
	DefaultThresholdAccept = 0.50
	DefaultThresholdReview = 0.30
)

const topCandidateCount = 5

// Locator orchestrates the query plan against a search provider.
type Locator struct {
	searcher        search.Searcher
	platform        platform.Platform
	logger          *slog.Logger
	thresholdAccept float64
	thresholdReview float64
}

// Option configures a Locator.
type Option func(*Locator)

// WithPlatform sets the target platform. Defaults to Instagram.
func WithPlatform(p platform.Platform) Option {
	return func(l *Locator) { l.platform = p }
}

// WithThresholds sets the accept and review score thresholds.
func WithThresholds(accept, review float64) Option {
	return func(l *Locator) {
		l.thresholdAccept = accept
		l.thresholdReview = review
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) { l.logger = logger }
}

// New creates a Locator backed by the given search provider.
func New(searcher search.Searcher, opts ...Option) *Locator {
	l := &Locator{
		searcher:        searcher,
		platform:        platform.Instagram,
		logger:          slog.Default(),
		thresholdAccept: DefaultThresholdAccept,
		thresholdReview: DefaultThresholdReview,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run executes the full lookup for one business: queries are issued
// strictly in plan order, each query's results are extracted and
// scored, and issuance stops early once a candidate clears the accept
// threshold. Queries that fail are recorded in the trace and skipped;
// only a missing name or context cancellation abort the run.
func (l *Locator) Run(ctx context.Context, biz identity.Business) (*Verdict, error) {
	if !biz.Valid() {
		return nil, ErrMissingName
	}

	queries := queryplan.Queries(biz, l.platform)
	l.logger.InfoContext(ctx, "starting profile lookup",
		"business", biz.Name, "platform", l.platform.Name, "queries", len(queries))

	var trace DebugTrace
	var candidates []Candidate
	byHandle := make(map[string]int)

	for rank, query := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		trace.Queries = append(trace.Queries, query)
		results, err := l.searcher.Search(ctx, query)
		if err != nil {
			l.logger.WarnContext(ctx, "query failed", "query", query, "error", err)
			trace.Outcomes = append(trace.Outcomes, QueryOutcome{Query: query, Err: err.Error()})
			continue
		}
		trace.Outcomes = append(trace.Outcomes, QueryOutcome{Query: query, Results: len(results)})

		for _, c := range Extract(results, query, rank+1, l.platform) {
			c.Score = Score(c, biz)
			l.logger.DebugContext(ctx, "scored candidate",
				"handle", c.Handle, "score", c.Score.Final, "query_rank", c.QueryRank)

			// One candidate per handle; the higher-scoring
			// occurrence wins, earlier query rank on ties.
			if i, seen := byHandle[c.Handle]; seen {
				if c.Score.Final > candidates[i].Score.Final {
					candidates[i] = c
				}
				continue
			}
			byHandle[c.Handle] = len(candidates)
			candidates = append(candidates, c)
		}

		if bestScore(candidates) >= l.thresholdAccept {
			l.logger.InfoContext(ctx, "high-confidence candidate found, stopping search",
				"queries_issued", rank+1)
			break
		}
	}

	// Ties keep discovery order, which follows query rank: earlier,
	// more specific queries are a priori more trustworthy.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score.Final > candidates[j].Score.Final
	})

	trace.CandidatesFound = len(candidates)
	trace.TopCandidates = append(trace.TopCandidates, candidates[:min(len(candidates), topCandidateCount)]...)

	return l.decide(ctx, candidates, trace), nil
}

func bestScore(candidates []Candidate) float64 {
	var best float64
	for _, c := range candidates {
		if c.Score.Final > best {
			best = c.Score.Final
		}
	}
	return best
}

func (l *Locator) decide(ctx context.Context, candidates []Candidate, trace DebugTrace) *Verdict {
	if len(candidates) == 0 {
		l.logger.InfoContext(ctx, "no valid candidates found")
		return &Verdict{
			Status: StatusRejected,
			Reason: fmt.Sprintf("No valid %s candidates found", l.platform.QueryToken),
			Trace:  trace,
		}
	}

	best := candidates[0]
	verdict := &Verdict{
		Best:       &best,
		Confidence: best.Score.Final,
		Trace:      trace,
	}

	switch {
	case best.Score.Final >= l.thresholdAccept:
		verdict.Status = StatusAccepted
		verdict.Reason = fmt.Sprintf("High confidence match (score: %.3f >= %s)",
			best.Score.Final, formatThreshold(l.thresholdAccept))
	case best.Score.Final >= l.thresholdReview:
		verdict.Status = StatusReview
		verdict.Reason = fmt.Sprintf("Possible match needing review (score: %.3f >= %s)",
			best.Score.Final, formatThreshold(l.thresholdReview))
	default:
		verdict.Status = StatusRejected
		verdict.Reason = fmt.Sprintf("Insufficient confidence (score: %.3f < %s)",
			best.Score.Final, formatThreshold(l.thresholdReview))
	}

	l.logger.InfoContext(ctx, "lookup decided",
		"status", verdict.Status, "handle", best.Handle, "confidence", best.Score.Final)
	return verdict
}

func formatThreshold(t float64) string {
	return strconv.FormatFloat(t, 'g', -1, 64)
}
