package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/sciseed/internal/config"
	"github.com/Rana718/sciseed/template"
)

var initCmd = &cobra.Command{
	Use:   "init [provider]",
	Short: "Create a sciseed.config.json in the current directory",
	Long: `
Write a config file with every default spelled out and add a DATABASE_URL
example to .env. Provider is one of postgresql (default), mysql, sqlite or
export.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbType := template.PostgreSQL
		if len(args) == 1 {
			dbType = template.ValidateDatabaseType(args[0])
		}
		return initializeProject(dbType)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func initializeProject(dbType template.DatabaseType) error {
	if _, err := os.Stat(config.FileName); err == nil {
		return fmt.Errorf("%s already exists", config.FileName)
	}

	tmpl := template.NewProjectTemplate(dbType)

	directories := tmpl.GetDirectoryStructure()
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	content, err := tmpl.GetConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(config.FileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to create file %s: %w", config.FileName, err)
	}

	if env := tmpl.GetEnvTemplate(); env != "" {
		if err := handleEnvFile(env); err != nil {
			return fmt.Errorf("failed to handle .env file: %w", err)
		}
	}

	color.Green("✅ Successfully initialized sciseed for %s", dbType)
	fmt.Println()
	fmt.Println("📝 Configuration file created:")
	fmt.Printf("   %s\n", config.FileName)

	if os.Getenv("DATABASE_URL") != "" {
		fmt.Println()
		fmt.Println("ℹ️  Using existing DATABASE_URL from environment")
	}

	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   sciseed plan    # Preview row counts\n")
	fmt.Printf("   sciseed seed    # Insert the dataset\n")
	return nil
}

func handleEnvFile(defaultEnvContent string) error {
	envPath := ".env"

	existingContent, err := os.ReadFile(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(envPath, []byte(defaultEnvContent), 0644)
		}
		return err
	}

	existingStr := string(existingContent)
	if strings.Contains(existingStr, "DATABASE_URL") {
		return nil
	}

	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}

	existingStr += "\n# Added by sciseed\n" + defaultEnvContent

	return os.WriteFile(envPath, []byte(existingStr), 0644)
}
