// Package queryplan generates the ordered search-query sequence for a
// business, most specific first. Earlier queries carry more identity
// signal, so the engine trusts their hits more and can stop early.
package queryplan

import (
	"fmt"
	"strings"

	"github.com/codeGROOVE-dev/bizlocator/pkg/identity"
	"github.com/codeGROOVE-dev/bizlocator/pkg/platform"
)

// Queries returns the search strings to issue for the business, in
// priority order. Strategies whose required fields are missing are
// skipped; duplicates across strategies are acceptable since each query
// is issued independently.
func Queries(biz identity.Business, p platform.Platform) []string {
	name := strings.TrimSpace(biz.Name)
	city := strings.TrimSpace(biz.City)
	state := strings.TrimSpace(biz.State)
	if name == "" {
		return nil
	}

	token := p.QueryToken
	site := p.SiteFilter()

	var queries []string

	// 1. Full location, unquoted.
	if city != "" && state != "" {
		queries = append(queries, fmt.Sprintf("%s %s %s %s %s", name, city, state, token, site))
	}

	// 2. City only.
	if city != "" {
		queries = append(queries, fmt.Sprintf("%s %s %s %s", name, city, token, site))
	}

	// 3. Name only.
	queries = append(queries, fmt.Sprintf("%s %s %s", name, token, site))

	// 4. Quoted exact-match fallback with full location.
	if city != "" && state != "" {
		queries = append(queries, fmt.Sprintf("%q %q %q %s %s", name, city, state, token, site))
	}

	// 5. Quoted name fallback.
	queries = append(queries, fmt.Sprintf("%q %s %s", name, token, site))

	return queries
}
