// Command bizlocator finds a business's social media profile from its
// identity attributes.
//
// Usage:
//
//	bizlocator "Joe's Pizza" -city Austin -state TX
//	bizlocator "Acme Widgets" -website acmewidgets.com -phone "(512) 555-1234"
//	bizlocator -listen :8080   # run the HTTP API instead
//
// Requires GOOGLE_SEARCH_API_KEY and GOOGLE_SEARCH_ENGINE_ID.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/codeGROOVE-dev/bizlocator/pkg/identity"
	"github.com/codeGROOVE-dev/bizlocator/pkg/locate"
	"github.com/codeGROOVE-dev/bizlocator/pkg/platform"
	"github.com/codeGROOVE-dev/bizlocator/pkg/qcache"
	"github.com/codeGROOVE-dev/bizlocator/pkg/search"
	"github.com/codeGROOVE-dev/bizlocator/pkg/serve"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	address := flag.String("address", "", "street address of the business")
	city := flag.String("city", "", "city of the business")
	state := flag.String("state", "", "state or region of the business")
	phone := flag.String("phone", "", "phone number of the business")
	website := flag.String("website", "", "website of the business")
	platformName := flag.String("platform", "instagram", "platform to search (instagram or facebook)")
	accept := flag.Float64("accept", locate.DefaultThresholdAccept, "minimum score for an accepted match")
	review := flag.Float64("review", locate.DefaultThresholdReview, "minimum score for a review-tier match")
	noCache := flag.Bool("no-cache", false, "disable search response caching (enabled by default with 7-day TTL)")
	cacheTTL := flag.Duration("cache-ttl", 7*24*time.Hour, "cache time-to-live (default: 7 days, use 1h for testing)")
	listen := flag.String("listen", "", "run the HTTP API on this address instead of a one-shot lookup")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Setup cache
	cache := qcache.NewNull()
	if !*noCache {
		c, err := qcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			cache = c
			logger.Debug("search cache initialized", "ttl", cacheTTL.String())
		}
	}

	if *listen != "" {
		srv := serve.New(serve.WithCache(cache), serve.WithLogger(logger))
		logger.Info("listening", "address", *listen)
		server := &http.Server{
			Addr:        *listen,
			Handler:     srv.Routes(),
			ReadTimeout: 30 * time.Second,
		}
		if err := server.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: bizlocator [options] <business name>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nCredentials (environment):")
		fmt.Fprintln(os.Stderr, "  GOOGLE_SEARCH_API_KEY     Google Custom Search API key")
		fmt.Fprintln(os.Stderr, "  GOOGLE_SEARCH_ENGINE_ID   Google Custom Search engine ID")
		os.Exit(1)
	}

	var target platform.Platform
	switch *platformName {
	case "instagram":
		target = platform.Instagram
	case "facebook":
		target = platform.Facebook
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown platform %q (want instagram or facebook)\n", *platformName)
		os.Exit(1)
	}

	client, err := search.New(
		search.WithCache(cache),
		search.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine := locate.New(client,
		locate.WithPlatform(target),
		locate.WithThresholds(*accept, *review),
		locate.WithLogger(logger),
	)

	verdict, err := engine.Run(context.Background(), identity.Business{
		Name:    flag.Arg(0),
		Address: *address,
		City:    *city,
		State:   *state,
		Phone:   *phone,
		Website: *website,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := verdict.Report()
	if !*debug && !*verbose {
		report.Debug = nil
	}
	if err := outputJSON(report); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
