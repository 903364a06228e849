package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevLevel := Out, Level
	Out = &buf
	t.Cleanup(func() { Out, Level = prevOut, prevLevel })
	return &buf
}

// TestTags tests that each helper prints its tag
func TestTags(t *testing.T) {
	buf := capture(t)

	tests := []struct {
		print func(string, ...any) string
		tag   string
	}{
		{E, RedError},
		{W, YellowWarning},
		{I, CyanInfo},
	}

	for _, tt := range tests {
		buf.Reset()
		msg := tt.print("value %d", 7)
		want := tt.tag + "value 7\n"
		if msg != want || buf.String() != want {
			t.Errorf("printed %q, returned %q, want %q", buf.String(), msg, want)
		}
	}
}

// TestDebugLevel tests debug filtering
func TestDebugLevel(t *testing.T) {
	buf := capture(t)

	Level = 0
	if msg := D(1, "hidden"); msg != "" || buf.Len() != 0 {
		t.Errorf("D(1) printed %q at level 0", buf.String())
	}

	Level = 2
	D(0, "never")
	D(3, "too verbose")
	D(2, "shown")
	if got := buf.String(); got != YellowDebug+"shown\n" {
		t.Errorf("printed %q", got)
	}
}

// TestSetupLogging tests that messages reach the log file without colors
func TestSetupLogging(t *testing.T) {
	capture(t)
	dir := filepath.Join(t.TempDir(), "logs")

	if err := SetupLogging(dir); err != nil {
		t.Fatal(err)
	}
	W("pattern %q fell back", "(?<=a)b")
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, `[Warning] pattern "(?<=a)b" fell back`) {
		t.Errorf("log file missing message:\n%s", content)
	}
	if strings.Contains(content, "\x1b[") {
		t.Errorf("log file contains color codes:\n%s", content)
	}

	// Messages after Close only go to the console.
	I("after close")
	if err := Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}
