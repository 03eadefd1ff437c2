package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/slafling/slafling/internal/config"
	"github.com/slafling/slafling/internal/profile"
	"github.com/slafling/slafling/internal/resolve"
	"github.com/slafling/slafling/internal/token"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ExitCode
	}{
		{"nil maps through HandleError", nil, ExitOK},
		{"mode mismatch", &resolve.ModeMismatchError{Operation: "init"}, ExitModeMismatch},
		{"missing token", &token.MissingTokenError{}, ExitToken},
		{"backend unavailable", &token.BackendUnavailableError{Store: "keychain", Reason: "not supported"}, ExitToken},
		{"permission denied", &token.PermissionError{Path: "/x", Err: errors.New("denied")}, ExitToken},
		{"unknown profile", &config.UnknownProfileError{Name: "nope"}, ExitNotFound},
		{"config not found", &config.NotFoundError{Path: "/x"}, ExitConfig},
		{"config read error", &config.ReadError{Path: "/x", Err: errors.New("permission denied")}, ExitConfig},
		{"parse error", &config.ParseError{Path: "/x", Err: errors.New("bad toml")}, ExitConfig},
		{"validation error", &config.ValidationError{Field: "default.output", Reason: "bad"}, ExitConfig},
		{"invalid profile name", &profile.InvalidNameError{Name: "../x", Reason: "bad"}, ExitConfig},
		{"missing channel", config.ErrMissingChannel, ExitConfig},
		{"wrapped missing token", fmt.Errorf("failed to resolve: %w", &token.MissingTokenError{}), ExitToken},
		{"plain error", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				if got := HandleError(nil); got != tt.want {
					t.Errorf("HandleError(nil) = %d, want %d", got, tt.want)
				}
				return
			}
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
