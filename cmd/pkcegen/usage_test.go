package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestCommandHelp_Print(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("option", "default", "a test option")

	help := CommandHelp{
		Usage:       "test-usage",
		Description: "test description\nsecond line",
		Options:     fs,
		Examples: []string{
			"example 1",
		},
	}

	var buf bytes.Buffer
	help.Print(&buf)

	output := buf.String()

	expectedSubstrings := []string{
		"Usage:",
		"test-usage",
		"Description:",
		"  test description",
		"  second line",
		"Options:",
		"-option",
		"a test option",
		"Examples:",
		"example 1",
	}

	for _, sub := range expectedSubstrings {
		if !strings.Contains(output, sub) {
			t.Errorf("expected output to contain %q, but it did not.\n\nGot:\n%s", sub, output)
		}
	}
}

func TestCommandHelp_PrintSkipsEmptySections(t *testing.T) {
	help := CommandHelp{Usage: "only-usage"}

	var buf bytes.Buffer
	help.Print(&buf)

	if got, want := buf.String(), "Usage:\n  only-usage\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}
