package core

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandleCrash(t *testing.T) {
	var out bytes.Buffer
	exitCode := -1
	resets := 0

	prevOut, prevExit := crashOut, crashExit
	crashOut = &out
	crashExit = func(code int) { exitCode = code }
	defer func() {
		crashOut, crashExit = prevOut, prevExit
		SetCrashReset(nil)
	}()

	SetCrashReset(func() { resets++ })

	HandleCrash(nil)
	if exitCode != -1 || resets != 0 {
		t.Fatalf("Expected nil panic value to be ignored, got exit %d resets %d", exitCode, resets)
	}

	HandleCrash("arena exhausted")
	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
	if resets != 1 {
		t.Errorf("Expected display reset once, got %d", resets)
	}
	if !strings.Contains(out.String(), "tileroom crashed: arena exhausted") {
		t.Errorf("Expected crash report, got %q", out.String())
	}

	HandleCrash("again")
	if resets != 1 {
		t.Errorf("Expected reset hook to run only once, got %d", resets)
	}
}
