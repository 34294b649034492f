package sensorlog

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogListenerConfigError(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogListener(slog.New(handler))

	l.OnConfigError("syntax error", "/etc/sensors.d/broken.conf", 12)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["level"] != "WARN" {
		t.Errorf("level: got %v, want WARN", entry["level"])
	}
	if entry["error"] != "syntax error" {
		t.Errorf("error: got %v, want %q", entry["error"], "syntax error")
	}
	if entry["file"] != "/etc/sensors.d/broken.conf" {
		t.Errorf("file: got %v, want broken.conf path", entry["file"])
	}
	if entry["line"] != float64(12) {
		t.Errorf("line: got %v, want 12", entry["line"])
	}
}

func TestSlogListenerConfigErrorNoFile(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogListener(slog.New(handler))

	l.OnConfigError("unexpected end of file", "", 1)

	output := buf.String()
	if strings.Contains(output, `"file"`) {
		t.Errorf("file attribute present for empty file name: %s", output)
	}
	if strings.Contains(output, `"line"`) {
		t.Errorf("line attribute present for empty file name: %s", output)
	}
}

func TestSlogListenerFatalError(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlogListener(slog.New(handler))

	l.OnFatalError("out of memory", "sensors_parse_chip_name")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["level"] != "ERROR" {
		t.Errorf("level: got %v, want ERROR", entry["level"])
	}
	if entry["procedure"] != "sensors_parse_chip_name" {
		t.Errorf("procedure: got %v, want sensors_parse_chip_name", entry["procedure"])
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.OnConfigError("first", "a.conf", 3)
	r.OnConfigError("second", "b.conf", 7)
	r.OnFatalError("boom", "sensors_init")

	config := r.ConfigErrors()
	if len(config) != 2 {
		t.Fatalf("config errors: got %d, want 2", len(config))
	}
	if config[0].Msg != "first" || config[0].Line != 3 {
		t.Errorf("first config error: got %+v", config[0])
	}
	if config[1].File != "b.conf" {
		t.Errorf("second config error: got %+v", config[1])
	}

	fatal := r.FatalErrors()
	if len(fatal) != 1 || fatal[0].Procedure != "sensors_init" {
		t.Errorf("fatal errors: got %+v", fatal)
	}

	// Snapshots are copies, not views.
	config[0].Msg = "mutated"
	if r.ConfigErrors()[0].Msg != "first" {
		t.Error("snapshot mutation reached the recorder")
	}

	r.Reset()
	if len(r.ConfigErrors()) != 0 || len(r.FatalErrors()) != 0 {
		t.Error("recorder not empty after Reset")
	}
}

func TestMulti(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	m := Multi(a, b)

	m.OnConfigError("shared", "c.conf", 1)
	m.OnFatalError("shared fatal", "proc")

	for i, r := range []*Recorder{a, b} {
		if len(r.ConfigErrors()) != 1 {
			t.Errorf("recorder %d: config errors not forwarded", i)
		}
		if len(r.FatalErrors()) != 1 {
			t.Errorf("recorder %d: fatal errors not forwarded", i)
		}
	}
}
