package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	var (
		show         bool
		providerName string
		key          string
		initExample  bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration or store an API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if initExample {
				path, err := a.cfg.WriteExample()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Wrote example env file to %s\n", path)
				return nil
			}

			if providerName != "" || key != "" {
				if providerName == "" || key == "" {
					return fmt.Errorf("--provider and --key must be given together")
				}
				info, err := a.providers.Lookup(providerName)
				if err != nil {
					return err
				}
				if err := a.cfg.SetAPIKey(info.EnvVar, key); err != nil {
					return err
				}
				fmt.Fprintf(w, "Stored %s in %s\n", info.EnvVar, a.cfg.EnvFile())
				return nil
			}

			// Default (and --show): print the effective configuration.
			prefs := a.cfg.Preferences()
			fmt.Fprintf(w, "Env file: %s\n", a.cfg.EnvFile())
			fmt.Fprintf(w, "Default provider: %s\n", prefs.DefaultProvider)
			fmt.Fprintf(w, "Default type: %s\n", prefs.DefaultType)
			fmt.Fprintf(w, "Default length: %d\n", prefs.DefaultLength)
			if prefs.OutputDirectory != "" {
				fmt.Fprintf(w, "Output directory: %s\n", prefs.OutputDirectory)
			}
			fmt.Fprintf(w, "Append by default: %t\n", prefs.AppendByDefault)

			fmt.Fprintln(w, "\nAPI keys:")
			for _, info := range a.providers.Infos() {
				status := "missing"
				if a.cfg.APIKey(info.EnvVar) != "" {
					status = "set"
				}
				fmt.Fprintf(w, "  %-22s %s\n", info.EnvVar, status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "Show the effective configuration")
	cmd.Flags().StringVar(&providerName, "provider", "", "Provider to store a key for")
	cmd.Flags().StringVar(&key, "key", "", "API key to store")
	cmd.Flags().BoolVar(&initExample, "init", false, "Write an example .env file")

	return cmd
}
