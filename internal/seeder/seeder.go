package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/gateway"
	"github.com/Rana718/sciseed/internal/logger"
)

type SeedOptions struct {
	Truncate bool // Clear tables before seeding
	Force    bool // Continue when truncate fails
}

// Report summarizes a finished run.
type Report struct {
	Counts   map[domain.Table]int
	Order    []domain.Table
	Duration time.Duration
}

type Seeder struct {
	engine  *Engine
	gateway gateway.Gateway
	graph   *DependencyGraph
	log     *zap.SugaredLogger
}

func NewSeeder(engine *Engine, gw gateway.Gateway) *Seeder {
	return &Seeder{
		engine:  engine,
		gateway: gw,
		graph:   NewDomainGraph(),
		log:     logger.Named("seeder"),
	}
}

func (s *Seeder) Close() error {
	return s.gateway.Close()
}

// Seed builds a dataset for plan and writes it through the gateway inside one
// session. Nothing is written when generation fails.
func (s *Seeder) Seed(ctx context.Context, plan Plan, opts SeedOptions) (*Report, error) {
	started := time.Now()
	color.Cyan("🌱 Generating dataset...")

	ds, err := s.engine.Build(plan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dataset")
	}

	batches, err := ds.Batches()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build insertion order")
	}
	order := make([]string, len(batches))
	for i, b := range batches {
		order[i] = b.Table.String()
	}
	color.Cyan("📋 Insertion order: %s", strings.Join(order, " → "))
	fmt.Println()

	if opts.Truncate {
		if err := s.Reset(ctx); err != nil {
			if !opts.Force {
				return nil, errors.WithHint(errors.Wrap(err, "failed to truncate tables"), "use --force to continue")
			}
			color.Yellow("⚠️  Truncate failed but continuing with --force: %v", err)
		}
	}

	if err := s.gateway.Begin(ctx); err != nil {
		return nil, err
	}
	color.Cyan("🔒 Transaction started")

	if err := s.insert(ctx, batches); err != nil {
		color.Yellow("🔄 Rolling back transaction due to error...")
		if rbErr := s.gateway.Rollback(ctx); rbErr != nil {
			return nil, errors.CombineErrors(err, errors.Wrap(rbErr, "rollback failed"))
		}
		color.Yellow("✅ Transaction rolled back")
		return nil, err
	}

	if err := s.gateway.Commit(ctx); err != nil {
		err = errors.Wrap(err, "failed to commit transaction")
		if rbErr := s.gateway.Rollback(ctx); rbErr != nil {
			return nil, errors.CombineErrors(err, errors.Wrap(rbErr, "rollback failed"))
		}
		return nil, err
	}
	color.Cyan("🔓 Transaction committed")

	report := &Report{
		Counts:   ds.Counts(),
		Duration: time.Since(started),
	}
	for _, b := range batches {
		report.Order = append(report.Order, b.Table)
	}
	s.log.Infow("seed complete", logger.FieldDuration, report.Duration.Milliseconds())
	color.Green("\n✅ Database seeding completed successfully!")
	return report, nil
}

func (s *Seeder) insert(ctx context.Context, batches []Batch) error {
	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return err
		}
		color.Cyan("  📝 Seeding %s (%d records)...", b.Table, len(b.Records))
		if err := s.gateway.BulkInsert(ctx, b.Table, b.Records); err != nil {
			return errors.Wrapf(err, "failed to seed table %s", b.Table)
		}
		s.log.Debugw("table seeded", logger.FieldTable, b.Table, logger.FieldCount, len(b.Records))
		color.Green("  ✅ %s seeded successfully", b.Table)
	}
	return nil
}

// Reset empties every generated table, children first.
func (s *Seeder) Reset(ctx context.Context) error {
	order, err := s.graph.TruncationOrder()
	if err != nil {
		return err
	}
	color.Yellow("🗑️  Truncating tables...")
	if err := s.gateway.Truncate(ctx, order); err != nil {
		return err
	}
	color.Green("✅ Tables truncated")
	fmt.Println()
	return nil
}
