package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSetup(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		Setup(&buf, "info").Info("class submitted", slog.String("id", "abc"))

		var record map[string]any
		if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
			t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
		}
		if record["msg"] != "class submitted" || record["id"] != "abc" {
			t.Errorf("record = %v", record)
		}
	})

	t.Run("level filters lower records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := Setup(&buf, "warn")
		log.Info("dropped")
		if buf.Len() != 0 {
			t.Errorf("info record written at warn level: %s", buf.String())
		}
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()

		if got := parseLevel("verbose"); got != slog.LevelInfo {
			t.Errorf("parseLevel(verbose) = %v, want info", got)
		}
	})
}
