package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("prod", &buf).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be suppressed outside dev: %s", buf.String())
	}

	NewWithWriter("dev", &buf).Debug("[job][usecase] visible", "job_id", "j-1")
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line: %v", err)
	}
	if line["job_id"] != "j-1" || line["service"] != "scale-workshop" {
		t.Fatalf("unexpected attrs: %v", line)
	}
}
