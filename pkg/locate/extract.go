package locate

import (
	"github.com/codeGROOVE-dev/bizlocator/pkg/platform"
	"github.com/codeGROOVE-dev/bizlocator/pkg/search"
)

// Extract filters one query's raw results down to valid profile
// candidates. Malformed or off-platform items are expected noise and
// are dropped silently; surviving candidates keep their input order.
func Extract(items []search.Result, query string, queryRank int, p platform.Platform) []Candidate {
	var candidates []Candidate
	for _, item := range items {
		if !p.MatchesLink(item.Link) {
			continue
		}
		if !p.IsProfileURL(item.Link) {
			continue
		}
		handle := p.Handle(item.Link)
		if handle == "" {
			continue
		}
		if platform.IsFanPage(item.Title, item.Snippet) {
			continue
		}

		candidates = append(candidates, Candidate{
			Handle:     handle,
			ProfileURL: item.Link,
			Title:      item.Title,
			Snippet:    item.Snippet,
			Query:      query,
			QueryRank:  queryRank,
		})
	}
	return candidates
}
