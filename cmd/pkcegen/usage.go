package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
)

// CommandHelp holds what the help output shows.
type CommandHelp struct {
	Usage       string
	Description string
	Options     *flag.FlagSet
	Examples    []string
}

// Print writes the help to writer, one blank line between sections.
func (h *CommandHelp) Print(writer io.Writer) {
	firstSectionPrinted := false

	printSectionSeparator := func() {
		if firstSectionPrinted {
			fmt.Fprintln(writer)
		}
		firstSectionPrinted = true
	}

	if h.Usage != "" {
		printSectionSeparator()
		fmt.Fprintln(writer, "Usage:")
		fmt.Fprintf(writer, "  %s\n", h.Usage)
	}

	if h.Description != "" {
		printSectionSeparator()
		fmt.Fprintln(writer, "Description:")
		scanner := bufio.NewScanner(strings.NewReader(h.Description))
		for scanner.Scan() {
			fmt.Fprintf(writer, "  %s\n", scanner.Text())
		}
	}

	if h.Options != nil {
		printSectionSeparator()
		fmt.Fprintln(writer, "Options:")

		// PrintDefaults writes to the flag set output, borrow it for a moment
		var buf bytes.Buffer
		previous := h.Options.Output()
		h.Options.SetOutput(&buf)
		h.Options.PrintDefaults()
		h.Options.SetOutput(previous)

		scanner := bufio.NewScanner(&buf)
		for scanner.Scan() {
			fmt.Fprintf(writer, "  %s\n", scanner.Text())
		}
	}

	if len(h.Examples) > 0 {
		printSectionSeparator()
		fmt.Fprintln(writer, "Examples:")
		for _, example := range h.Examples {
			fmt.Fprintf(writer, "  %s\n", example)
		}
	}
}
