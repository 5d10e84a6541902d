package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/sheesania/prattle/pkg/markov"
)

// writeStatsReport renders the statistics and delivers them to the output
// file or stdout. Rendering happens in memory so a failed run writes
// nothing.
func writeStatsReport(cmd *cobra.Command, path string, stats markov.Stats, asMarkdown bool) error {
	var buf bytes.Buffer

	write := writeTextStats
	if asMarkdown {
		write = writeMarkdownStats
	}
	if err := write(&buf, stats); err != nil {
		return fmt.Errorf("could not render statistics: %w", err)
	}

	if path != "" {
		if err := atomic.WriteFile(path, &buf); err != nil {
			return fmt.Errorf("could not write %s: %w", path, err)
		}
		return nil
	}

	_, err := buf.WriteTo(cmd.OutOrStdout())
	return err
}

// writeTextStats outputs the statistics in plain text for terminal display.
func writeTextStats(w io.Writer, stats markov.Stats) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Mode:          %s\n", stats.Mode))
	sb.WriteString(fmt.Sprintf("Group size:    %d\n", stats.Order))
	sb.WriteString(fmt.Sprintf("Distinct keys: %d\n", stats.DistinctKeys))
	sb.WriteString(fmt.Sprintf("Transitions:   %d\n", stats.Transitions))
	sb.WriteString(fmt.Sprintf("Start keys:    %d\n", stats.StartKeys))
	sb.WriteString("\n")

	sb.WriteString("Busiest keys:\n")
	for _, kc := range stats.TopKeys {
		sb.WriteString(fmt.Sprintf("  %-4d %q\n", kc.Count, kc.Key))
	}

	_, err := w.Write([]byte(sb.String()))
	return err
}

// writeMarkdownStats outputs the statistics as Markdown for documentation
// and sharing.
func writeMarkdownStats(w io.Writer, stats markov.Stats) error {
	md := markdown.NewMarkdown(w)

	md.H1("Model Statistics")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Mode", string(stats.Mode)},
			{"Group size", strconv.Itoa(stats.Order)},
			{"Distinct keys", strconv.Itoa(stats.DistinctKeys)},
			{"Transitions", strconv.Itoa(stats.Transitions)},
			{"Start keys", strconv.Itoa(stats.StartKeys)},
		},
	})
	md.PlainText("")

	md.H2("Busiest Keys")
	md.PlainText("")

	rows := make([][]string, len(stats.TopKeys))
	for i, kc := range stats.TopKeys {
		// Keys are quoted so whitespace-only keys stay visible.
		rows[i] = []string{"`" + strconv.Quote(kc.Key) + "`", strconv.Itoa(kc.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Key", "Count"},
		Rows:   rows,
	})

	return md.Build()
}
