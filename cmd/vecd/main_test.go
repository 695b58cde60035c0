package main

import (
	"io/ioutil"
	"runtime/trace"
	"testing"
)

func TestRunExitCode(t *testing.T) {
	defer func() {
		configPath, devicePath, baud, doTrace = "", "", 0, false
	}()
	traceOut = ioutil.Discard

	configPath = "does-not-exist.hjson"
	if code := run(); code != 1 {
		t.Fatalf("Bad config should exit 1, got %v", code)
	}

	configPath, devicePath, doTrace = "", "/dev/null", true
	if code := run(); code != 1 {
		t.Fatalf("Device without baud should exit 1, got %v", code)
	}
	if trace.IsEnabled() {
		t.Fatalf("Trace should be stopped before exit")
	}
}
