package args_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argkit/pkg/logger"
)

// jsonLines collects JSON log output.
type jsonLines struct {
	bytes.Buffer
}

func (j *jsonLines) records(t *testing.T) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(j.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

// captureLog returns a debug level JSON logger and a function returning the
// records written to it so far.
func captureLog(t *testing.T) (*slog.Logger, func() []map[string]any) {
	t.Helper()
	buf := &jsonLines{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	return log, func() []map[string]any { return buf.records(t) }
}
