// Package gateway is the persistence boundary. The seeder hands it ordered
// batches of records inside one session and commits once.
package gateway

import (
	"context"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/gateway/export"
	"github.com/Rana718/sciseed/internal/gateway/mysql"
	"github.com/Rana718/sciseed/internal/gateway/postgres"
	"github.com/Rana718/sciseed/internal/gateway/sqlite"
)

type Gateway interface {
	Begin(ctx context.Context) error
	// BulkInsert writes records in order. All records belong to table.
	BulkInsert(ctx context.Context, table domain.Table, records []domain.Record) error
	Commit(ctx context.Context) error
	// Rollback discards the open session. It is safe to call without one.
	Rollback(ctx context.Context) error
	// Truncate empties tables, given children first.
	Truncate(ctx context.Context, tables []domain.Table) error
	Close() error
}

const ProviderExport = "export"

type Options struct {
	BatchSize    int
	ExportDir    string
	ExportFormat string
}

// New picks an adapter for provider and connects it. The export provider
// ignores url.
func New(ctx context.Context, provider, url string, opts Options) (Gateway, error) {
	switch provider {
	case "postgresql", "postgres":
		g := postgres.New(opts.BatchSize)
		if err := g.Connect(ctx, url); err != nil {
			return nil, err
		}
		return g, nil
	case "mysql":
		g := mysql.New(opts.BatchSize)
		if err := g.Connect(ctx, url); err != nil {
			return nil, err
		}
		return g, nil
	case "sqlite", "sqlite3":
		g := sqlite.New(opts.BatchSize)
		if err := g.Connect(ctx, url); err != nil {
			return nil, err
		}
		return g, nil
	case ProviderExport:
		format, err := export.ParseFormat(opts.ExportFormat)
		if err != nil {
			return nil, err
		}
		return export.New(opts.ExportDir, format), nil
	default:
		return nil, errors.WithHint(
			errors.InvalidArgumentf("unsupported database provider: %s", provider),
			"use postgresql, mysql, sqlite or export",
		)
	}
}

// Providers lists the names New accepts.
func Providers() []string {
	return []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3", ProviderExport}
}
