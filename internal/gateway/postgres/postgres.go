package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/gateway/common"
	"github.com/Rana718/sciseed/internal/logger"
)

// pool is the subset of *pgxpool.Pool the gateway drives.
type pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Gateway struct {
	pool      pool
	tx        pgx.Tx
	qb        squirrel.StatementBuilderType
	batchSize int
	log       *zap.SugaredLogger
}

func New(batchSize int) *Gateway {
	return &Gateway{
		qb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		batchSize: batchSize,
		log:       logger.Named("gateway.postgres"),
	}
}

func (g *Gateway) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return errors.Wrap(err, "failed to parse connection URL")
	}

	// Dates and budgets are bound as strings and typed by the server.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeDescribeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	p, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return errors.Wrap(err, "failed to create connection pool")
	}

	g.pool = p
	if err := g.Ping(ctx); err != nil {
		p.Close()
		g.pool = nil
		return errors.Wrap(err, "failed to ping database")
	}
	return nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.pool.Ping(ctx)
}

func (g *Gateway) Begin(ctx context.Context) error {
	if g.tx != nil {
		return errors.New("transaction already open")
	}
	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	g.tx = tx
	return nil
}

func (g *Gateway) BulkInsert(ctx context.Context, table domain.Table, records []domain.Record) error {
	stmts, err := common.InsertStatements(g.qb, table, records, g.batchSize)
	if err != nil {
		return err
	}
	ex := g.execer()
	for _, stmt := range stmts {
		if _, err := ex.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
			return errors.Wrapf(err, "failed to insert into %s", table)
		}
	}
	if err := g.syncSequence(ctx, ex, table); err != nil {
		return err
	}
	g.log.Debugw("inserted", logger.FieldTable, table, logger.FieldCount, len(records))
	return nil
}

// syncSequence moves the serial sequence behind table's key past the ids
// inserted explicitly, so later inserts without an id do not collide.
func (g *Gateway) syncSequence(ctx context.Context, ex execer, table domain.Table) error {
	col, ok := table.IDColumn()
	if !ok {
		return nil
	}
	query := "SELECT setval(pg_get_serial_sequence($1, $2), (SELECT MAX(" +
		pq.QuoteIdentifier(col) + ") FROM " + pq.QuoteIdentifier(table.String()) + "))"
	if _, err := ex.Exec(ctx, query, table.String(), col); err != nil {
		return errors.Wrapf(err, "failed to advance id sequence of %s", table)
	}
	return nil
}

func (g *Gateway) Commit(ctx context.Context) error {
	if g.tx == nil {
		return errors.New("no open transaction")
	}
	err := g.tx.Commit(ctx)
	g.tx = nil
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (g *Gateway) Rollback(ctx context.Context) error {
	if g.tx == nil {
		return nil
	}
	err := g.tx.Rollback(ctx)
	g.tx = nil
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return errors.Wrap(err, "failed to roll back transaction")
	}
	return nil
}

// Truncate empties tables in one statement and restarts their identities.
func (g *Gateway) Truncate(ctx context.Context, tables []domain.Table) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(tables))
	for _, t := range tables {
		if !common.IsValidIdentifier(t.String()) {
			return errors.InvalidArgumentf("invalid table name: %s", t)
		}
		quoted = append(quoted, pq.QuoteIdentifier(t.String()))
	}

	query := "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := g.execer().Exec(ctx, query); err != nil {
		return errors.Wrap(err, "failed to truncate tables")
	}
	return nil
}

func (g *Gateway) Close() error {
	if g.tx != nil {
		_ = g.tx.Rollback(context.Background())
		g.tx = nil
	}
	if g.pool != nil {
		g.pool.Close()
	}
	return nil
}

func (g *Gateway) execer() execer {
	if g.tx != nil {
		return g.tx
	}
	return g.pool
}
