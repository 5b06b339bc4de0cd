package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ExitError
		wantCode     int
		wantErrorStr string
	}{
		{
			name:         "user error",
			err:          NewUserError("not in a git repository"),
			wantCode:     ExitUserError,
			wantErrorStr: "not in a git repository",
		},
		{
			name:         "user error with cause",
			err:          NewUserErrorWithCause("invalid config", errors.New("bad yaml")),
			wantCode:     ExitUserError,
			wantErrorStr: "invalid config",
		},
		{
			name:         "system error",
			err:          NewSystemError("cannot write config"),
			wantCode:     ExitSystemError,
			wantErrorStr: "cannot write config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantErrorStr {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantErrorStr)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewSystemErrorWithCause("writing config failed", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
	if err.Error() != "writing config failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "writing config failed")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "user error", err: NewUserError("not in a git repository"), expected: ExitUserError},
		{name: "system error", err: NewSystemError("transport closed"), expected: ExitSystemError},
		{name: "wrapped system error", err: fmt.Errorf("serve: %w", NewSystemError("eof")), expected: ExitSystemError},
		{name: "regular error defaults to user error", err: errors.New("unknown flag"), expected: ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestIsReported(t *testing.T) {
	reported := NewUserError("not in a git repository")
	reported.Reported = true

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("unknown flag: --nope"), false},
		{"unreported exit error", NewUserError("bad config"), false},
		{"reported exit error", reported, true},
		{"wrapped reported", fmt.Errorf("running: %w", reported), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReported(tt.err); got != tt.want {
				t.Errorf("IsReported() = %v, want %v", got, tt.want)
			}
		})
	}
}
