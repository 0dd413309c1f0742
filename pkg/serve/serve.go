// Package serve exposes the locator over HTTP with the original API
// surface: /api/instagram/search plus a health endpoint.
package serve

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/bizlocator/pkg/identity"
	"github.com/codeGROOVE-dev/bizlocator/pkg/locate"
	"github.com/codeGROOVE-dev/bizlocator/pkg/qcache"
	"github.com/codeGROOVE-dev/bizlocator/pkg/search"
)

// Server handles lookup requests.
type Server struct {
	cache    qcache.Cacher
	logger   *slog.Logger
	searcher search.Searcher
}

// Option configures a Server.
type Option func(*Server)

// WithCache sets the query-response cache shared across requests.
func WithCache(cache qcache.Cacher) Option {
	return func(s *Server) { s.cache = cache }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithSearcher overrides the search provider. When unset, a Google
// client is built per request so header-supplied credentials work.
func WithSearcher(searcher search.Searcher) Option {
	return func(s *Server) { s.searcher = searcher }
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the HTTP mux for the API surface.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/instagram/search", s.handleSearch)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// searchParams is the request body/query surface of the lookup
// endpoint.
type searchParams struct {
	BusinessName    string   `json:"businessName"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Phone           string   `json:"phone"`
	Website         string   `json:"website"`
	ThresholdAccept *float64 `json:"thresholdAccept"`
	ThresholdReview *float64 `json:"thresholdReview"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	params, err := parseParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "bad_request", Message: err.Error()})
		return
	}
	if params.BusinessName == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing_params", Message: "businessName is required"})
		return
	}

	searcher := s.searcher
	if searcher == nil {
		client, err := search.New(
			search.WithCredentials(r.Header.Get("x-api-key"), r.Header.Get("x-search-engine-id")),
			search.WithCache(s.cache),
			search.WithLogger(s.logger),
		)
		if err != nil {
			if errors.Is(err, search.ErrMissingCredentials) {
				writeJSON(w, http.StatusBadRequest, apiError{
					Error:   "missing_api_credentials",
					Message: "Google Custom Search API key and Search Engine ID are required",
				})
				return
			}
			writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal_error", Message: err.Error()})
			return
		}
		searcher = client
	}

	accept := locate.DefaultThresholdAccept
	review := locate.DefaultThresholdReview
	if params.ThresholdAccept != nil {
		accept = *params.ThresholdAccept
	}
	if params.ThresholdReview != nil {
		review = *params.ThresholdReview
	}

	engine := locate.New(searcher,
		locate.WithLogger(s.logger),
		locate.WithThresholds(accept, review),
	)

	verdict, err := engine.Run(r.Context(), identity.Business{
		Name:    params.BusinessName,
		Address: params.Address,
		City:    params.City,
		State:   params.State,
		Phone:   params.Phone,
		Website: params.Website,
	})
	if err != nil {
		if errors.Is(err, locate.ErrMissingName) {
			writeJSON(w, http.StatusBadRequest, apiError{Error: "missing_params", Message: "businessName is required"})
			return
		}
		s.logger.ErrorContext(r.Context(), "lookup failed", "business", params.BusinessName, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal_error", Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, verdict.Report())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	setCORS(w)
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "bizlocator API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// parseParams reads the lookup parameters from the query string on GET
// and from the JSON body on other methods, as the original API did.
func parseParams(r *http.Request) (searchParams, error) {
	var p searchParams

	if r.Method == http.MethodGet {
		q := r.URL.Query()
		p.BusinessName = q.Get("businessName")
		p.Address = q.Get("address")
		p.City = q.Get("city")
		p.State = q.Get("state")
		p.Phone = q.Get("phone")
		p.Website = q.Get("website")
		for key, dst := range map[string]**float64{
			"thresholdAccept": &p.ThresholdAccept,
			"thresholdReview": &p.ThresholdReview,
		} {
			if v := q.Get(key); v != "" {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return p, errors.New(key + " must be a number")
				}
				*dst = &f
			}
		}
		return p, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return p, errors.New("invalid JSON body")
	}
	return p, nil
}

func setCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, x-api-key, x-search-engine-id")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("failed to encode response", "error", err)
	}
}
