package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wordforge/wordforge/internal/engine"
	"github.com/wordforge/wordforge/internal/output"
	"github.com/wordforge/wordforge/internal/seedfile"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		outFile      string
		length       int
		providerName string
		model        string
		batchSize    int
		stopOnError  bool
		dryRun       bool
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "batch <seed-file> <type>",
		Short: "Generate wordlists for every seed set in a file",
		Long:  "Reads seed words from a file (one per line, # comments), groups them into sets, and runs one generation per set. Failed sets are recorded and the batch continues unless --stop-on-error is given.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seeds, err := seedfile.Read(args[0])
			if err != nil {
				return err
			}
			t, err := a.types.Resolve(args[1])
			if err != nil {
				return err
			}

			prefs := a.cfg.Preferences()
			if length == 0 {
				length = prefs.DefaultLength
			}

			sets := seedfile.Group(seeds, batchSize)
			req := engine.Request{Length: length}

			if dryRun {
				gen := &engine.Generator{Type: t}
				for i, set := range sets {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "\n---")
					}
					prompt, err := gen.BuildPrompt(engine.Request{Seeds: set, Length: length})
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), prompt)
				}
				return nil
			}

			client, err := a.resolveClient(providerName, model)
			if err != nil {
				return err
			}

			path := outFile
			if path == "" {
				path = t.DefaultFilename
				if prefs.OutputDirectory != "" {
					path = filepath.Join(prefs.OutputDirectory, path)
				}
			}

			// Batch always appends: each set's words land as they arrive.
			w, err := output.NewWriter(path, true)
			if err != nil {
				return err
			}
			defer w.Close()

			showProgress := !jsonOutput && !a.silent
			progress := output.NewProgress(os.Stderr, a.verbose, !showProgress)
			if showProgress {
				output.WriteHeader(os.Stderr, a.noColor)
			}

			gen := &engine.Generator{Type: t, Client: client, Progress: progress}
			opts := engine.BatchOptions{
				StopOnError: stopOnError,
				Sink: func(item engine.BatchItem) error {
					return w.Append(item.Result.Words)
				},
			}

			result, runErr := gen.RunBatch(cmd.Context(), sets, req, opts)

			if showProgress {
				progress.Complete()
			}

			if jsonOutput {
				if err := output.WriteJSON(os.Stdout, result); err != nil {
					return err
				}
				return runErr
			}

			if !a.silent {
				output.WriteBatchSummary(os.Stdout, result, a.noColor)
				fmt.Fprintf(os.Stdout, "\nWrote %d words to %s\n", result.Summary.TotalWords, path)
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default: the type's default filename)")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Target wordlist length per set (default: from preferences)")
	cmd.Flags().StringVarP(&providerName, "provider", "p", "", "LLM provider (default: from preferences)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model override")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 1, "Seeds per generation set")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Abort the batch on the first failed set")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the prompts without calling the provider")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output structured JSON to stdout")

	return cmd
}
