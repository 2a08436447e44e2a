package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wordforge/wordforge/internal/engine"
	"github.com/wordforge/wordforge/internal/output"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seeds        []string
		seedsCSV     string
		outFile      string
		length       int
		providerName string
		model        string
		appendOut    bool
		instructions string
		dryRun       bool
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "generate <type>",
		Short: "Generate a wordlist from seed words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.types.Resolve(args[0])
			if err != nil {
				return err
			}

			allSeeds := append([]string{}, seeds...)
			for _, s := range strings.Split(seedsCSV, ",") {
				if s = strings.TrimSpace(s); s != "" {
					allSeeds = append(allSeeds, s)
				}
			}
			if len(allSeeds) == 0 {
				return fmt.Errorf("at least one seed word is required (-s or --seeds)")
			}

			prefs := a.cfg.Preferences()
			if length == 0 {
				length = prefs.DefaultLength
			}

			req := engine.Request{Seeds: allSeeds, Length: length, Instructions: instructions}

			// Dry-run prints the prompt without touching the provider.
			if dryRun {
				gen := &engine.Generator{Type: t}
				prompt, err := gen.BuildPrompt(req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), prompt)
				return nil
			}

			client, err := a.resolveClient(providerName, model)
			if err != nil {
				return err
			}

			path := outFile
			if path == "" && prefs.OutputDirectory != "" {
				path = filepath.Join(prefs.OutputDirectory, t.DefaultFilename)
			}
			toStdout := path == "" && !jsonOutput

			showProgress := !jsonOutput && !a.silent
			progress := output.NewProgress(os.Stderr, a.verbose, !showProgress)
			if showProgress {
				output.WriteHeader(os.Stderr, a.noColor)
			}

			gen := &engine.Generator{Type: t, Client: client, Progress: progress}
			result, err := gen.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			if showProgress {
				progress.Complete()
			}

			if jsonOutput {
				return output.WriteJSON(os.Stdout, result)
			}

			if toStdout {
				// Words on stdout, summary on stderr so the list stays pipeable.
				if err := output.WriteWords(os.Stdout, result.Words); err != nil {
					return err
				}
				if !a.silent {
					output.WriteSummary(os.Stderr, result, a.noColor)
				}
				return nil
			}

			w, err := output.NewWriter(path, appendOut || prefs.AppendByDefault)
			if err != nil {
				return err
			}
			if err := w.Append(result.Words); err != nil {
				w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}

			if !a.silent {
				output.WriteSummary(os.Stdout, result, a.noColor)
				fmt.Fprintf(os.Stdout, "\nWrote %d words to %s\n", len(result.Words), path)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&seeds, "seed", "s", nil, "Seed word (repeatable)")
	cmd.Flags().StringVar(&seedsCSV, "seeds", "", "Comma-separated seed words")
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "Target wordlist length (default: from preferences)")
	cmd.Flags().StringVarP(&providerName, "provider", "p", "", "LLM provider (default: from preferences)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model override")
	cmd.Flags().BoolVarP(&appendOut, "append", "a", false, "Append to the output file instead of overwriting")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Extra instructions appended to the prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the prompt without calling the provider")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output structured JSON to stdout")

	return cmd
}
