package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	opts, _, ok := parseFlags([]string{"-c", "/etc/u.toml", "-log-level", "DEBUG", "-R", "in.txt"}, &stdout, &stderr)
	if !ok {
		t.Fatalf("parseFlags failed: %s", stderr.String())
	}

	if opts.ConfigPath != "/etc/u.toml" {
		t.Errorf("ConfigPath = %q", opts.ConfigPath)
	}
	if opts.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q", opts.LogLevel)
	}
	if !opts.ReadOnly {
		t.Error("ReadOnly should be set")
	}
	if opts.File != "in.txt" {
		t.Errorf("File = %q", opts.File)
	}
	if opts.Version != version {
		t.Errorf("Version = %q", opts.Version)
	}
}

func TestParseFlags_Exit(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		exit   int
		stdout string
		stderr string
	}{
		{"version", []string{"-version"}, 0, "uniedit dev", ""},
		{"help", []string{"-h"}, 0, "", "Usage: uniedit"},
		{"bad log level", []string{"-log-level", "loud"}, 1, "", "invalid log level"},
		{"too many files", []string{"a", "b"}, 2, "", "at most one file"},
		{"unknown flag", []string{"-nope"}, 2, "", "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			_, exit, ok := parseFlags(tt.args, &stdout, &stderr)
			if ok {
				t.Fatal("expected parseFlags to stop")
			}
			if exit != tt.exit {
				t.Errorf("exit = %d, want %d", exit, tt.exit)
			}
			if !strings.Contains(stdout.String(), tt.stdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.stdout)
			}
			if !strings.Contains(stderr.String(), tt.stderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.stderr)
			}
		})
	}
}
