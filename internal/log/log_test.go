// ABOUTME: Tests for the diagnostic logging package
// ABOUTME: Validates level gating, verbose switching, and output capture

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestSetVerbose(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetVerbose(true)
	if GetLevel() != LevelDebug {
		t.Errorf("verbose level = %v, want LevelDebug", GetLevel())
	}

	SetVerbose(false)
	if GetLevel() != LevelWarn {
		t.Errorf("quiet level = %v, want LevelWarn", GetLevel())
	}
}

func TestDebugSuppressedAtWarnLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(LevelWarn)
	Debug("hidden %s", "entry")
	Info("also hidden")

	if buf.Len() != 0 {
		t.Errorf("suppressed levels wrote %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(LevelDebug)
	Debug("visible %d", 7)

	if !strings.Contains(buf.String(), "[DEBUG] visible 7") {
		t.Errorf("debug output = %q, want it to contain the entry", buf.String())
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	SetLevel(LevelError)
	Error("boom: %v", "reason")

	if !strings.Contains(buf.String(), "[ERROR] boom: reason") {
		t.Errorf("error output = %q", buf.String())
	}
}
