package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File names searched for configuration.
const (
	ProjectFileName = ".forkcheck.yml"
	GlobalFileName  = "config.yml"
)

// MatchMode selects how remote and branch names are found in git output.
type MatchMode string

// Match modes.
const (
	// MatchSubstring tests for the literal token anywhere in the command text.
	MatchSubstring MatchMode = "substring"
	// MatchExact parses the command text and compares whole names.
	MatchExact MatchMode = "exact"
)

// Config holds the conventions a working copy is compared against.
type Config struct {
	ProjectName     string    `yaml:"project_name"     json:"project_name"     validate:"required"`
	OriginRemote    string    `yaml:"origin_remote"    json:"origin_remote"    validate:"required"`
	UpstreamRemote  string    `yaml:"upstream_remote"  json:"upstream_remote"  validate:"required,nefield=OriginRemote"`
	UpstreamURL     string    `yaml:"upstream_url"     json:"upstream_url"     validate:"required,url|startswith=git@"`
	DefaultBranches []string  `yaml:"default_branches" json:"default_branches" validate:"required,min=1,dive,required"`
	WatchBranches   []string  `yaml:"watch_branches"   json:"watch_branches"   validate:"dive,required"`
	CommitLimit     int       `yaml:"commit_limit"     json:"commit_limit"     validate:"min=1,max=100"`
	Match           MatchMode `yaml:"match"            json:"match"            validate:"oneof=substring exact"`
	ContributingDoc string    `yaml:"contributing_doc" json:"contributing_doc"`
}

// Default returns the built-in conventions.
func Default() *Config {
	return &Config{
		ProjectName:     "Federated DDoS Detection",
		OriginRemote:    "origin",
		UpstreamRemote:  "upstream",
		UpstreamURL:     "https://github.com/HemanthKumar-CS/Fedrated_DDoS_Detection.git",
		DefaultBranches: []string{"main", "master"},
		WatchBranches:   []string{"mark2"},
		CommitLimit:     5,
		Match:           MatchSubstring,
		ContributingDoc: "CONTRIBUTING.md",
	}
}

// Parse decodes YAML on top of the defaults. Keys absent from data keep their
// default values; unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}

	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Validate checks field constraints and returns a readable error listing
// every violation.
func (c *Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// IsDefaultBranch reports whether branch is exactly one of the default branches.
func (c *Config) IsDefaultBranch(branch string) bool {
	return slices.Contains(c.DefaultBranches, branch)
}

// describeFieldError turns a validator error into "field: reason".
func describeFieldError(fe validator.FieldError) string {
	field := yamlName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", field, fe.Param())
	case "nefield":
		return field + ": must differ from origin_remote"
	case "url|startswith=git@":
		return field + ": must be a URL or an scp-style git address"
	default:
		return fmt.Sprintf("%s: failed %q", field, fe.Tag())
	}
}

// yamlName maps a struct field to its YAML key, keeping any slice index.
func yamlName(structField string) string {
	name, index, hasIndex := strings.Cut(structField, "[")
	if hasIndex {
		return yamlName(name) + "[" + index
	}

	switch structField {
	case "ProjectName":
		return "project_name"
	case "OriginRemote":
		return "origin_remote"
	case "UpstreamRemote":
		return "upstream_remote"
	case "UpstreamURL":
		return "upstream_url"
	case "DefaultBranches":
		return "default_branches"
	case "WatchBranches":
		return "watch_branches"
	case "CommitLimit":
		return "commit_limit"
	case "Match":
		return "match"
	default:
		return structField
	}
}
