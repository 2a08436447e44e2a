package main

import (
	"github.com/spf13/cobra"
	"github.com/wordforge/wordforge/internal/output"
	"github.com/wordforge/wordforge/pkg/models"
)

func newProvidersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the available LLM providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := a.cfg.Preferences()

			var rows []output.ProviderRow
			for _, info := range a.providers.Infos() {
				model := prefs.DefaultModels[info.Name]
				if model == "" {
					model = models.Default(info.Name)
				}
				rows = append(rows, output.ProviderRow{
					Name:         info.Name,
					EnvVar:       info.EnvVar,
					DefaultModel: model,
					Configured:   a.cfg.APIKey(info.EnvVar) != "",
				})
			}
			output.WriteProvidersTable(cmd.OutOrStdout(), rows, a.noColor)
			return nil
		},
	}
}
