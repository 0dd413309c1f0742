package serve

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codeGROOVE-dev/bizlocator/pkg/search"
)

type fakeSearcher struct {
	results []search.Result
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, query string) ([]search.Result, error) {
	f.queries = append(f.queries, query)
	return f.results, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestServer(t *testing.T, searcher search.Searcher) *httptest.Server {
	t.Helper()
	opts := []Option{WithLogger(quietLogger())}
	if searcher != nil {
		opts = append(opts, WithSearcher(searcher))
	}
	srv := httptest.NewServer(New(opts...).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q, want *", got)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "OK" {
		t.Errorf("status field = %q, want OK", body["status"])
	}
	if body["timestamp"] == "" {
		t.Error("timestamp field is empty")
	}
}

func TestSearchMissingBusinessName(t *testing.T) {
	srv := newTestServer(t, &fakeSearcher{})

	resp, err := http.Get(srv.URL + "/api/instagram/search?city=Austin")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "missing_params" {
		t.Errorf("error code = %q, want missing_params", body["error"])
	}
}

func TestSearchMissingCredentials(t *testing.T) {
	t.Setenv("GOOGLE_SEARCH_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GOOGLE_SEARCH_ENGINE_ID", "")
	t.Setenv("GOOGLE_CSE_CX", "")

	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/instagram/search?businessName=Joe%27s+Pizza")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "missing_api_credentials" {
		t.Errorf("error code = %q, want missing_api_credentials", body["error"])
	}
}

func TestSearchGetAccepted(t *testing.T) {
	fake := &fakeSearcher{results: []search.Result{
		{
			Title:   "Joe's Pizza (@joespizza) on Instagram",
			Snippet: "Best slices in Austin, TX. Call 512-555-1234",
			Link:    "https://www.instagram.com/joespizza/",
		},
	}}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/api/instagram/search?businessName=Joe%27s+Pizza&city=Austin&state=TX")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Handle     string  `json:"instagram_handle"`
		URL        string  `json:"instagram_url"`
		Confidence float64 `json:"match_confidence"`
		Status     string  `json:"match_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "accepted" {
		t.Errorf("match_status = %q, want accepted", body.Status)
	}
	if body.Handle != "@joespizza" {
		t.Errorf("instagram_handle = %q, want @joespizza", body.Handle)
	}
	if body.URL != "https://www.instagram.com/joespizza/" {
		t.Errorf("instagram_url = %q", body.URL)
	}
	if body.Confidence < 0.5 {
		t.Errorf("match_confidence = %v, want >= 0.5", body.Confidence)
	}
	if len(fake.queries) == 0 {
		t.Error("searcher was never called")
	}
}

func TestSearchPostBody(t *testing.T) {
	fake := &fakeSearcher{}
	srv := newTestServer(t, fake)

	payload := `{"businessName":"Acme Widgets","city":"Denver","thresholdAccept":0.9}`
	resp, err := http.Post(srv.URL+"/api/instagram/search", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Handle string `json:"instagram_handle"`
		Status string `json:"match_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != "no_instagram" {
		t.Errorf("match_status = %q, want no_instagram", body.Status)
	}
	if body.Handle != "No Instagram found" {
		t.Errorf("instagram_handle = %q, want sentinel", body.Handle)
	}
}

func TestSearchPostInvalidBody(t *testing.T) {
	srv := newTestServer(t, &fakeSearcher{})

	resp, err := http.Post(srv.URL+"/api/instagram/search", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchBadThresholdParam(t *testing.T) {
	srv := newTestServer(t, &fakeSearcher{})

	resp, err := http.Get(srv.URL + "/api/instagram/search?businessName=Acme&thresholdAccept=high")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(t, &fakeSearcher{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/instagram/search", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Errorf("CORS methods = %q, want POST allowed", got)
	}
}
