package main

import (
	"strings"
	"testing"
)

func TestPrintUsage_ListsFlags(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := runHelp(nil, env); code != ExitSuccess {
		t.Fatalf("runHelp() = %d, want %d", code, ExitSuccess)
	}

	for _, want := range []string{
		"--html", "--css", "--input", "--output", "--css-dir", "--style", "--asset-path",
		"--no-highlight", "--no-navbar", "--no-icon", "--workers", "--config", "--quiet", "--verbose",
		"doctor", "version",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("usage should mention %q", want)
		}
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command    string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"doctor", ExitSuccess, "Usage: cbeautify doctor", ""},
		{"version", ExitSuccess, "Usage: cbeautify version", ""},
		{"help", ExitSuccess, "Usage: cbeautify help", ""},
		{"completion", ExitSuccess, "Usage: cbeautify completion", ""},
		{"convert", ExitUsage, "", "unknown command: convert"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			if code := runHelp([]string{tt.command}, env); code != tt.wantCode {
				t.Errorf("runHelp(%q) = %d, want %d", tt.command, code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
