package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/sciseed/internal/seeder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a dataset and insert it",
	Long: `
Generate a complete academic dataset in memory, validate it, and insert it
in foreign-key order inside a single transaction. Any failure rolls the
whole run back.

Examples:
  sciseed seed
  sciseed seed --truncate
  sciseed seed --seed 42 --batch 500
  sciseed seed --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		engine, err := newEngine(cfg)
		if err != nil {
			return err
		}

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if dryRun {
			ds, err := engine.Build(cfg.Seed.Plan)
			if err != nil {
				return err
			}
			color.Green("✅ Dataset is consistent. Nothing was written.")
			printCounts(ds.Counts())
			return nil
		}

		ctx, cancel := signalContext()
		defer cancel()

		gw, err := openGateway(ctx, cfg, cfg.Database.Provider, "json")
		if err != nil {
			return err
		}
		s := seeder.NewSeeder(engine, gw)
		defer s.Close()

		truncate, _ := cmd.Flags().GetBool("truncate")
		force, _ := cmd.Flags().GetBool("force")

		report, err := s.Seed(ctx, cfg.Seed.Plan, seeder.SeedOptions{Truncate: truncate, Force: force})
		if err != nil {
			return err
		}

		fmt.Println()
		printCounts(report.Counts)
		color.Cyan("⏱️  %s", report.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	addGenerationFlags(seedCmd)
	seedCmd.Flags().Bool("truncate", false, "Clear tables before seeding")
	seedCmd.Flags().Bool("force", false, "Continue if truncation fails")
	seedCmd.Flags().Int("batch", 0, "Rows per INSERT statement (default from config)")
	seedCmd.Flags().Bool("dry-run", false, "Build and validate the dataset without writing it")
}
