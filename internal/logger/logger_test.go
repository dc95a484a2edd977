package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer reset()

	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("dropped %q", "go") }, "[DEBUG] dropped \"go\"\n"},
		{"info", func() { Info("%d results", 3) }, "[INFO] 3 results\n"},
		{"warn", func() { Warn("tabs unavailable") }, "[WARN] tabs unavailable\n"},
		{"section", func() { Section("Aggregate") }, "\n=== Aggregate ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("a")
	Info("b")
	Warn("c")
	Section("d")

	if buf.Len() > 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	defer reset()

	path := filepath.Join(t.TempDir(), "logs", "quickswitch.log")
	closer, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	SetVerbose(true)

	Warn("bookmarks unavailable")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	line := string(data)
	if !strings.HasSuffix(line, "[WARN] bookmarks unavailable\n") {
		t.Errorf("unexpected log line: %q", line)
	}
	if strings.HasPrefix(line, "[WARN]") {
		t.Errorf("expected a timestamp prefix: %q", line)
	}
}

// TestOpenFile_CloseRestoresStderr tests that logging after close does not hit the closed file
func TestOpenFile_CloseRestoresStderr(t *testing.T) {
	defer reset()

	path := filepath.Join(t.TempDir(), "quickswitch.log")
	closer, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	_ = closer.Close()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	Info("after close")

	if buf.String() != "[INFO] after close\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("expected empty log file, got %q", data)
	}
}

func TestConcurrentToggle(t *testing.T) {
	defer reset()

	SetOutput(&bytes.Buffer{})

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(i%2 == 0)
			IsVerbose()
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
