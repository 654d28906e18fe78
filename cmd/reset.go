package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/sciseed/internal/seeder"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Empty every generated table",
	Long: `
Truncate all tables sciseed writes, children first, and restart their
identity counters where the database supports it.

⚠️  WARNING: This permanently deletes the data in those tables!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("Delete all generated data?") {
			color.Yellow("Reset cancelled")
			return nil
		}

		ctx, cancel := signalContext()
		defer cancel()

		gw, err := openGateway(ctx, cfg, cfg.Database.Provider, "json")
		if err != nil {
			return err
		}
		s := seeder.NewSeeder(nil, gw)
		defer s.Close()

		return s.Reset(ctx)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
