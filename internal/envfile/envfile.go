// Package envfile loads forkcheck settings from dotenv files.
// Variables already present in the environment always win.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Prefix is the only key namespace imported from env files; other keys in a
// shared .env belong to the project, not to forkcheck.
const Prefix = "FORKCHECK_"

// Load reads a dotenv file and sets every FORKCHECK_ variable that is not
// already defined (an empty value still counts as defined). It returns the
// keys it set. A missing file is not an error.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	var set []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok || !strings.HasPrefix(key, Prefix) {
			continue
		}
		if _, defined := os.LookupEnv(key); defined {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("setting %s from %s: %w", key, path, err)
		}
		set = append(set, key)
	}
	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return set, nil
}

// LoadAll loads each path in order; earlier files take precedence because
// Load never overwrites. A file that fails to load does not stop the later
// ones. Returns every key set across all files and the joined load errors.
func LoadAll(paths ...string) ([]string, error) {
	var (
		all  []string
		errs []error
	)
	for _, path := range paths {
		set, err := Load(path)
		all = append(all, set...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return all, errors.Join(errs...)
}

// parseLine extracts KEY=VALUE from one line. Blank lines, comments and
// lines without '=' are skipped. An optional "export " prefix and matching
// surrounding quotes are stripped.
func parseLine(raw string) (key, value string, ok bool) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' || first == '\'') && first == last {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
