// Command demo-feed runs a fake upstream leaderboard API for local runs
// of the board service.
package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/playmetrics/podium/internal/demofeed"
)

const (
	defaultAddr       = ":9091"
	readHeaderTimeout = 5 * time.Second
)

func main() {
	addr := os.Getenv("DEMOFEED_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	opts := []demofeed.Option{}
	if raw := os.Getenv("DEMOFEED_ENTRANTS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts = append(opts, demofeed.WithRosterSize(n))
		}
	}
	if raw := os.Getenv("DEMOFEED_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			opts = append(opts, demofeed.WithSeed(seed))
		}
	}

	mux := http.NewServeMux()
	demofeed.NewServer(demofeed.NewGenerator(opts...)).Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	os.Stdout.WriteString("demo feed listening on " + addr + "\n")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		os.Stderr.WriteString("demo feed failed: " + err.Error() + "\n")
	}
}
