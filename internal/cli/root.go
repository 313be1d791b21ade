// Package cli is the fragadmin command tree. Each resource gets a subcommand
// whose actions drive the corresponding list screen, so the CLI exercises the
// same store/form/modal/cascade path the web dashboard does.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/fragranceshop/fragrance-admin/internal/api"
	"github.com/fragranceshop/fragrance-admin/internal/config"
)

var apiBase string

var rootCmd = &cobra.Command{
	Use:          "fragadmin",
	Short:        "Admin console for the fragrance shop backend",
	Long:         "fragadmin manages customers, products and orders through the shop's REST API.",
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "backend base URL (overrides API_BASE_URL)")
}

func newClient() *api.Client {
	base := apiBase
	if base == "" {
		base = config.Load().APIBaseURL
	}
	return api.New(base)
}
