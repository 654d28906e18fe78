package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/gateway/common"
)

type Gateway struct {
	*common.SQLSession
}

func New(batchSize int) *Gateway {
	return &Gateway{
		SQLSession: common.NewSQLSession(nil, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), batchSize, "gateway.sqlite"),
	}
}

// NewWithDB wraps an existing handle.
func NewWithDB(db *sql.DB, batchSize int) *Gateway {
	g := New(batchSize)
	g.DB = db
	return g
}

func (g *Gateway) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("sqlite3", Path(url))
	if err != nil {
		return errors.Wrap(err, "failed to open SQLite connection")
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return errors.Wrap(err, "failed to open SQLite database")
	}

	g.DB = db
	return nil
}

// Path strips the sqlite:// scheme and adds default connection parameters.
func Path(url string) string {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?cache=shared&_journal_mode=WAL&_foreign_keys=on"
	}
	return dbPath
}

// Truncate deletes every row and resets the AUTOINCREMENT counter. Tables
// must be given children first.
func (g *Gateway) Truncate(ctx context.Context, tables []domain.Table) error {
	for _, t := range tables {
		if !common.IsValidIdentifier(t.String()) {
			return errors.InvalidArgumentf("invalid table name: %s", t)
		}
	}
	for _, t := range tables {
		if _, err := g.Exec(ctx, fmt.Sprintf(`DELETE FROM "%s"`, t)); err != nil {
			return errors.Wrapf(err, "failed to truncate %s", t)
		}
		// sqlite_sequence only exists once an AUTOINCREMENT table was created
		q, args, err := g.QB.Delete("sqlite_sequence").Where(squirrel.Eq{"name": t.String()}).ToSql()
		if err != nil {
			return errors.Wrap(err, "build sequence reset")
		}
		_, _ = g.Exec(ctx, q, args...)
	}
	return nil
}
