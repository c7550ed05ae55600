// pkg/logging/logger_test.go
package logging

import (
	"context"
	"errors"
	"testing"
)

func TestWithCorrelationID_RoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "test-id-123")

	if got := GetCorrelationID(ctx); got != "test-id-123" {
		t.Errorf("GetCorrelationID() = %q, expected %q", got, "test-id-123")
	}
}

func TestWithCorrelationID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "")

	if got := GetCorrelationID(ctx); got == "" {
		t.Error("expected a generated correlation ID, got empty string")
	}
}

func TestGetCorrelationID_MissingReturnsEmpty(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != "" {
		t.Errorf("GetCorrelationID() = %q, expected empty string", got)
	}
}

func TestGenerateCorrelationID(t *testing.T) {
	a := GenerateCorrelationID()
	b := GenerateCorrelationID()

	if len(a) != 16 {
		t.Errorf("correlation ID length = %d, expected 16 hex characters", len(a))
	}
	if a == b {
		t.Error("consecutive correlation IDs are identical")
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")

	wrapped := WrapError(base, "saving config %q", "sim.json")
	if wrapped == nil {
		t.Fatal("WrapError() returned nil for non-nil error")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
	if wrapped.Error() != `saving config "sim.json": disk full` {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}
}

func TestWrapError_NilPassthrough(t *testing.T) {
	if err := WrapError(nil, "context"); err != nil {
		t.Errorf("WrapError(nil) = %v, expected nil", err)
	}
}

func TestNewLogger_LevelFromEnvironment(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{
			name:  "debug",
			level: "DEBUG",
		},
		{
			name:  "warn_alias",
			level: "WARNING",
		},
		{
			name:  "unknown_defaults_to_info",
			level: "VERBOSE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SOFTBODY_LOG_LEVEL", tt.level)
			if logger := NewLogger(); logger == nil {
				t.Fatal("NewLogger() returned nil")
			}
		})
	}
}
