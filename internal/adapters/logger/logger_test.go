package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractal/internal/adapters/logger"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/zerr"
)

func newBuffered() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newBuffered()

	lg.Info("pass started")
	lg.Warn("pixel failed")
	lg.Error(os.ErrPermission)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "pass started")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "pixel failed")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "permission denied")
}

func TestLogger_ErrorIgnoresNil(t *testing.T) {
	lg, buf := newBuffered()
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorRendersChain(t *testing.T) {
	lg, buf := newBuffered()

	err := zerr.With(zerr.Wrap(domain.ErrInvalidParams, "magnification must be at least 1"), "field", "magnification")
	lg.Error(zerr.Wrap(err, "prepare failed"))

	out := buf.String()
	assert.Contains(t, out, "Error: prepare failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "field: magnification")
	assert.Contains(t, out, "invalid fractal parameters")
}

func TestLogger_JSONMode(t *testing.T) {
	lg, buf := newBuffered()
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrUnknownKind, "no calculator registered"), "kind", 99))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Contains(t, record, "error")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to text")
	assert.Contains(t, buf.String(), "msg=\"back to text\"")
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on a standard error",
			err:          zerr.Wrap(zerr.With(errors.New("disk full"), "path", "out.png"), "export failed"),
			wantMessages: []string{"export failed", "disk full"},
			wantMetadata: []map[string]any{{}, {"path": "out.png"}},
		},
		{
			name: "mixed chain with partial metadata",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				return zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{
				{"outer_key": "outer_val"},
				{"inner_key": "inner_val"},
			},
		},
		{
			name: "nil error handling",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)
			require.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries with caused by",
			entries: []logger.ErrorEntry{{Message: "outer error"}, {Message: "inner error"}},
			want:    "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "multiline cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause line1\ncause line2", Metadata: map[string]any{"formula": "iteration"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2\n      formula: iteration",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
