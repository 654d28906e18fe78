package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/gateway/common"
)

type Gateway struct {
	*common.SQLSession
}

func New(batchSize int) *Gateway {
	return &Gateway{
		SQLSession: common.NewSQLSession(nil, squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), batchSize, "gateway.mysql"),
	}
}

// NewWithDB wraps an existing handle.
func NewWithDB(db *sql.DB, batchSize int) *Gateway {
	g := New(batchSize)
	g.DB = db
	return g
}

func (g *Gateway) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", DSN(url))
	if err != nil {
		return errors.Wrap(err, "failed to open MySQL connection")
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return errors.Wrap(err, "failed to ping MySQL")
	}

	g.DB = db
	return nil
}

var sslReplacer = strings.NewReplacer(
	"ssl-mode=REQUIRED", "tls=skip-verify",
	"ssl-mode=DISABLED", "tls=false",
	"ssl-mode=VERIFY_CA", "tls=true",
	"ssl-mode=VERIFY_IDENTITY", "tls=true",
	"sslmode=require", "tls=skip-verify",
	"sslmode=disable", "tls=false",
	"sslmode=verify-ca", "tls=true",
	"sslmode=verify-full", "tls=true",
)

// DSN converts a mysql:// URL into the driver's DSN form. Anything else is
// returned unchanged.
func DSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.Index(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := sslReplacer.Replace(remainder[slashIndex+1:])

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

// Truncate disables foreign key checks on a pinned connection so tables can
// be emptied in any order.
func (g *Gateway) Truncate(ctx context.Context, tables []domain.Table) error {
	if len(tables) == 0 {
		return nil
	}
	for _, t := range tables {
		if !common.IsValidIdentifier(t.String()) {
			return errors.InvalidArgumentf("invalid table name: %s", t)
		}
	}

	conn, err := g.DB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire connection")
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return errors.Wrap(err, "failed to disable foreign key checks")
	}

	var truncErr error
	for _, t := range tables {
		if _, err := conn.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE `%s`", t)); err != nil {
			truncErr = errors.Wrapf(err, "failed to truncate %s", t)
			break
		}
	}

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1"); err != nil && truncErr == nil {
		truncErr = errors.Wrap(err, "failed to re-enable foreign key checks")
	}
	return truncErr
}
