package config

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// Environment overrides.
const (
	EnvUpstreamURL   = "FORKCHECK_UPSTREAM_URL"
	EnvWatchBranches = "FORKCHECK_WATCH_BRANCHES"
)

// ApplyEnv overlays environment overrides onto cfg and returns the names of
// the variables that were applied.
func ApplyEnv(cfg *Config) []string {
	var applied []string

	if url := strings.TrimSpace(os.Getenv(EnvUpstreamURL)); url != "" {
		cfg.UpstreamURL = url
		applied = append(applied, EnvUpstreamURL)
	}

	if raw, ok := os.LookupEnv(EnvWatchBranches); ok {
		cfg.WatchBranches = SplitList(raw)
		applied = append(applied, EnvWatchBranches)
	}

	return applied
}

// SplitList splits a comma-separated list, trimming blanks and dropping
// duplicates while keeping first-seen order.
func SplitList(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
	return lo.Uniq(lo.Compact(parts))
}
