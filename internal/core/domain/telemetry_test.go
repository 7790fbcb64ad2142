package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fractal/internal/core/domain"
)

func TestPassStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.PassStatus
		isTerminal bool
	}{
		{"Pending", domain.PassStatusPending, false},
		{"Running", domain.PassStatusRunning, false},
		{"Completed", domain.PassStatusCompleted, true},
		{"Failed", domain.PassStatusFailed, true},
		{"Cached", domain.PassStatusCached, true},
		{"Superseded", domain.PassStatusSuperseded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(999), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
