package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"matchreview/internal/config"
	"matchreview/internal/logging"
)

func TestJSONLoggerWritesSessionAndLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "matchreview.log")

	logger, err := logging.New(logging.Options{
		Level:     "info",
		Format:    "json",
		Path:      logPath,
		SessionID: "session-1",
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("export written", "count", 3)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected debug line to be filtered, got %d lines: %q", len(lines), content)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not json: %v", err)
	}
	if entry["level"] != "info" || entry["msg"] != "export written" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["session"] != "session-1" {
		t.Fatalf("expected session attribute, got %v", entry["session"])
	}
	if entry["count"] != float64(3) {
		t.Fatalf("expected count attribute, got %v", entry["count"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
}

func TestTextLoggerGeneratesSession(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "text.log")

	logger, err := logging.New(logging.Options{Level: "debug", Format: "text", Path: logPath})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("selection toggled")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "session=") {
		t.Fatalf("expected generated session, got %q", content)
	}
	if !strings.Contains(string(content), "logger_test.go:") {
		t.Fatalf("expected source location at debug level, got %q", content)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml", Path: filepath.Join(t.TempDir(), "x.log")})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, err := logging.New(logging.Options{Level: "debug"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Error("nowhere")
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Path = filepath.Join(t.TempDir(), "cfg.log")

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("started")

	if _, err := os.Stat(cfg.Logging.Path); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}
