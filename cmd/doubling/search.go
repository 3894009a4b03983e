package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/viniciusth/suffixdoubling"
)

var (
	searchCmd = &cobra.Command{
		Use:   "search [pattern...]",
		Short: "Print every offset where each pattern occurs in the text",
		Long: `Indexes the text given with --text or read from --file, then prints one
line per pattern: the pattern followed by its offsets in ascending order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearchCommand,
	}
	searchText     string
	searchFile     string
	searchAlphabet string
	caseSensitive  bool
)

func init() {
	searchCmd.Flags().StringVar(&searchText, "text", "", "Text to index")
	searchCmd.Flags().StringVar(&searchFile, "file", "", "Read the text to index from this file")
	searchCmd.Flags().StringVar(&searchAlphabet, "alphabet", "", "Ordered symbols of the alphabet (default a-z)")
	searchCmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "Do not fold case of the text and patterns")
}

func runSearchCommand(cmd *cobra.Command, patterns []string) error {
	if searchText != "" && searchFile != "" {
		return errors.New("--text and --file cannot be used together")
	}
	text := searchText
	if searchFile != "" {
		data, err := os.ReadFile(searchFile)
		if err != nil {
			return err
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	builder := suffixdoubling.NewBuilder(text).SkipLCP()
	if searchAlphabet != "" {
		alphabet, err := suffixdoubling.NewAlphabet(searchAlphabet)
		if err != nil {
			return err
		}
		builder = builder.WithAlphabet(alphabet)
	}
	if caseSensitive {
		builder = builder.CaseSensitive()
	}

	start := time.Now()
	index, err := builder.Build()
	if err != nil {
		return err
	}
	logger.Debug("index built", "length", index.Len(), "powers", index.Powers(), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	for _, p := range patterns {
		offsets, err := index.Search(p)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p, err)
		}
		slices.Sort(offsets)
		fmt.Fprintf(out, "%s:", p)
		for _, o := range offsets {
			fmt.Fprintf(out, " %d", o)
		}
		fmt.Fprintln(out)
	}
	return nil
}
