package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Logger.Printf("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("expected debug.log to exist: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("expected log line in file, got %q", string(data))
	}
	if !strings.Contains(string(data), "[modalpicker]") {
		t.Errorf("expected prefix in log output, got %q", string(data))
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Logger == nil {
		t.Fatal("logger should never be nil")
	}
}
