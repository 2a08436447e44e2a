package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/wordforge/wordforge/internal/engine"
)

// Version is set via ldflags at build time.
var Version = "dev"

// WriteHeader prints the wordforge banner.
func WriteHeader(w io.Writer, noColor bool) {
	if noColor {
		fmt.Fprintf(w, "wordforge %s\n\n", Version)
	} else {
		fmt.Fprintf(w, "\033[1mwordforge %s\033[0m\n\n", Version)
	}
}

// WriteSummary prints the post-generation summary.
func WriteSummary(w io.Writer, result *engine.Result, noColor bool) {
	fmt.Fprintln(w)
	if noColor {
		fmt.Fprintf(w, "Type: %s\n", result.Type)
		fmt.Fprintf(w, "Provider: %s (%s)\n", result.Provider, result.Model)
		fmt.Fprintf(w, "Seeds: %s\n", strings.Join(result.Seeds, ", "))
		fmt.Fprintf(w, "Words: %d of %d requested\n", len(result.Words), result.Requested)
	} else {
		fmt.Fprintf(w, "\033[1mType:\033[0m %s\n", result.Type)
		fmt.Fprintf(w, "\033[1mProvider:\033[0m %s (%s)\n", result.Provider, result.Model)
		fmt.Fprintf(w, "\033[1mSeeds:\033[0m %s\n", strings.Join(result.Seeds, ", "))
		fmt.Fprintf(w, "\033[1mWords:\033[0m %d of %d requested\n", len(result.Words), result.Requested)
	}

	if result.Invalid > 0 || result.Duplicates > 0 || result.Truncated > 0 {
		fmt.Fprintf(w, "Dropped: %d invalid, %d duplicates, %d over length\n",
			result.Invalid, result.Duplicates, result.Truncated)
	}

	if shortfall := result.Shortfall(); shortfall > 0 {
		fmt.Fprintln(w)
		if noColor {
			fmt.Fprintf(w, "! %d fewer words than requested after validation\n", shortfall)
		} else {
			fmt.Fprintf(w, "\033[33m!\033[0m %d fewer words than requested after validation\n", shortfall)
		}
	}
}

// WriteBatchSummary prints the post-batch summary with per-set failures.
func WriteBatchSummary(w io.Writer, result *engine.BatchResult, noColor bool) {
	s := result.Summary

	fmt.Fprintln(w)
	if noColor {
		fmt.Fprintf(w, "Type: %s\n", result.Type)
		fmt.Fprintf(w, "Provider: %s (%s)\n", result.Provider, result.Model)
		fmt.Fprintf(w, "Sets: %d processed, %d failed\n", s.Sets, s.Failed)
		fmt.Fprintf(w, "Words: %d total\n", s.TotalWords)
	} else {
		fmt.Fprintf(w, "\033[1mType:\033[0m %s\n", result.Type)
		fmt.Fprintf(w, "\033[1mProvider:\033[0m %s (%s)\n", result.Provider, result.Model)
		fmt.Fprintf(w, "\033[1mSets:\033[0m %d processed, %d failed\n", s.Sets, s.Failed)
		fmt.Fprintf(w, "\033[1mWords:\033[0m %d total\n", s.TotalWords)
	}

	if s.Failed > 0 {
		fmt.Fprintln(w)
		for _, item := range result.Items {
			if item.Error == "" {
				continue
			}
			if noColor {
				fmt.Fprintf(w, "! %s: %s\n", strings.Join(item.Seeds, ", "), item.Error)
			} else {
				fmt.Fprintf(w, "\033[33m!\033[0m %s: %s\n", strings.Join(item.Seeds, ", "), item.Error)
			}
		}
	}
}
