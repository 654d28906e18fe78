package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Rana718/sciseed/internal/config"
	"github.com/Rana718/sciseed/internal/logger"
)

var (
	cfgFile string
	Version = "0.4.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════════╗",
		"║    ███████╗ ██████╗██╗███████╗███████╗███████╗██████╗       ║",
		"║    ██╔════╝██╔════╝██║██╔════╝██╔════╝██╔════╝██╔══██╗      ║",
		"║    ███████╗██║     ██║███████╗█████╗  █████╗  ██║  ██║      ║",
		"║    ╚════██║██║     ██║╚════██║██╔══╝  ██╔══╝  ██║  ██║      ║",
		"║    ███████║╚██████╗██║███████║███████╗███████╗██████╔╝      ║",
		"║    ╚══════╝ ╚═════╝╚═╝╚══════╝╚══════╝╚══════╝╚═════╝       ║",
		"║                                                              ║",
		"║         🎓 Synthetic academic data for your database 🎓       ║",
		"╚══════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "sciseed",
	Short: "Generate relationally consistent academic test data",
	Long: `
sciseed fills a database with synthetic university data: faculties,
addresses, conferences, scientists, PhDs, publications and fundings.

Every foreign key is valid by construction. Conferences are split evenly
across faculties, PhD supervisors are senior scientists of the candidate's
faculty, and funding periods follow the budget tier.

Database Support:
- PostgreSQL
- MySQL
- SQLite
- File export (json, csv, yaml)`,

	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
	SilenceErrors:     true,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("sciseed version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	defer logger.Cleanup()
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON to stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("sciseed.config")
	}

	viper.SetEnvPrefix("SCISEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			color.Yellow("⚠️  Could not read config: %v", err)
		}
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Logger.Debugw("config loaded", "file", used)
	}
	return nil
}
