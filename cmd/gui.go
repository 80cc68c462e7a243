package cmd

import (
	"github.com/philipparndt/geomeasure/internal/app"
	"github.com/spf13/cobra"
)

var guiCenter string

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open an interactive map with the measure tool",
	Long: `Open an interactive map with the measure tool. Changes to the options file
are applied to the next measurement.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings(cmd, flags)
		if err != nil {
			return err
		}
		opts, proj, err := buildOptions(s)
		if err != nil {
			return err
		}
		logger, err := newLogger(s.Verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		center, err := parseCoordinates([]string{guiCenter})
		if err != nil {
			return err
		}

		return app.Run(app.Config{
			ConfigPath: s.ConfigPath,
			Options:    opts,
			Projection: proj,
			Center:     proj.FromWGS84(center[0]),
			Logger:     logger,
		})
	},
}

func init() {
	guiCmd.Flags().StringVar(&guiCenter, "center", "0,0", "initial map center as lon,lat")
	rootCmd.AddCommand(guiCmd)
}

