package cli

import (
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-cli/internal/console"
)

// NewRootCommand builds the weather command. Arguments following -s are
// treated as further cities, so "-s Berlin Paris" reports both.
func NewRootCommand(app *App, out *console.Console) *cobra.Command {
	var req Request

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Show current weather for cities and remember them",
		Long: `weather looks up cities with Open-Meteo geocoding and prints their current
conditions. Cities given with -s are saved; without -s the saved cities are shown.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			req.HasCities = flags.Changed("city")
			req.HasToken = flags.Changed("token")
			req.HasLanguage = flags.Changed("language")
			if req.HasCities {
				req.Cities = append(req.Cities, args...)
			} else if len(args) > 0 {
				app.logger.Debug("ignoring arguments without -s")
			}

			app.Run(cmd.Context(), req)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&req.Cities, "city", "s", nil, "city to show and save (repeatable)")
	cmd.Flags().StringVarP(&req.Language, "language", "l", "", "language used to look cities up")
	cmd.Flags().StringVarP(&req.Token, "token", "t", "", "API token sent to the weather provider")

	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		out.Help()
	})
	return cmd
}
