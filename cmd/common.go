package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rana718/sciseed/internal/config"
	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/gateway"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/seeder"
)

// loadConfig loads and validates the config, applying the generation flags
// shared by seed, export and plan.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed.RandomSeed, _ = flags.GetUint64("seed")
	}
	if flags.Lookup("batch") != nil && flags.Changed("batch") {
		cfg.Seed.Batch, _ = flags.GetInt("batch")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) (*seeder.Engine, error) {
	catalogs, err := cfg.Catalogs()
	if err != nil {
		return nil, err
	}
	p := provider.New(provider.WithSeed(cfg.Seed.RandomSeed))
	return seeder.NewEngine(p, catalogs), nil
}

func openGateway(ctx context.Context, cfg *config.Config, provider, format string) (gateway.Gateway, error) {
	var url string
	if provider != gateway.ProviderExport {
		var err error
		if url, err = cfg.GetDatabaseURL(); err != nil {
			return nil, err
		}
	}
	gw, err := gateway.New(ctx, provider, url, cfg.GatewayOptions(format))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return gw, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Random seed for reproducible data (0 = random)")
}

func confirm(prompt string) bool {
	color.Yellow("%s (y/N): ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func printCounts(counts map[domain.Table]int) {
	order, err := seeder.NewDomainGraph().BuildInsertionOrder()
	if err != nil {
		return
	}
	total := 0
	for _, t := range order {
		color.White("   %-28s %6d", t, counts[t])
		total += counts[t]
	}
	color.Cyan("   %-28s %6d", "total", total)
}

// printError writes err with any hints attached to it.
func printError(err error) {
	color.Red("❌ %v", err)
	for _, hint := range errors.GetAllHints(err) {
		color.Yellow("💡 %s", hint)
	}
}
