package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/wordforge/wordforge/internal/config"
	"github.com/wordforge/wordforge/internal/output"
	"github.com/wordforge/wordforge/internal/provider"
	"github.com/wordforge/wordforge/internal/wordlist"
)

// Set via ldflags at build time.
var version = "dev"

// app carries the shared CLI state: loaded config, the registries, and
// the persistent flags.
type app struct {
	cfg       *config.Config
	types     *wordlist.Registry
	providers *provider.Registry

	noColor bool
	silent  bool
	verbose bool
}

// resolveClient builds the retry-wrapped client for a provider, applying
// the preference defaults when the flags are empty.
func (a *app) resolveClient(name, model string) (provider.Client, error) {
	prefs := a.cfg.Preferences()
	if name == "" {
		name = prefs.DefaultProvider
	}

	info, err := a.providers.Lookup(name)
	if err != nil {
		return nil, err
	}
	key := a.cfg.APIKey(info.EnvVar)
	if key == "" {
		return nil, fmt.Errorf("no API key configured for %s (set %s)", name, info.EnvVar)
	}
	if model == "" {
		model = prefs.DefaultModels[name]
	}

	return a.providers.Resolve(name, provider.Config{
		APIKey:  key,
		Model:   model,
		BaseURL: a.cfg.Value("CUSTOM_API_URL"),
	})
}

func main() {
	output.Version = version

	a := &app{
		types:     wordlist.Builtin(),
		providers: provider.Builtin(),
	}

	rootCmd := &cobra.Command{
		Use:   "wordforge",
		Short: "Generate targeted wordlists with LLMs",
		Long:  "LLM-backed wordlist generation for security testing — password, subdomain, directory, and cloud-resource lists built from seed words, validated for tool compatibility.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Respect NO_COLOR env var.
			if _, ok := os.LookupEnv("NO_COLOR"); ok {
				a.noColor = true
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable terminal colors")
	rootCmd.PersistentFlags().BoolVar(&a.silent, "silent", false, "Results only, no progress")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose progress detail")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newBatchCmd(a),
		newTypesCmd(a),
		newProvidersCmd(a),
		newConfigCmd(a),
	)

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("wordforge {{.Version}}\n")

	// Set up context with signal handling for clean Ctrl+C.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nInterrupted, cleaning up...")
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
