package common

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/logger"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SQLSession runs inserts for database/sql backed gateways. Statements go
// through the open transaction when there is one and the pool otherwise.
type SQLSession struct {
	DB        *sql.DB
	QB        squirrel.StatementBuilderType
	BatchSize int

	tx  *sql.Tx
	log *zap.SugaredLogger
}

func NewSQLSession(db *sql.DB, qb squirrel.StatementBuilderType, batchSize int, name string) *SQLSession {
	return &SQLSession{
		DB:        db,
		QB:        qb,
		BatchSize: batchSize,
		log:       logger.Named(name),
	}
}

func (s *SQLSession) Begin(ctx context.Context) error {
	if s.tx != nil {
		return errors.New("transaction already open")
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	s.tx = tx
	return nil
}

func (s *SQLSession) BulkInsert(ctx context.Context, table domain.Table, records []domain.Record) error {
	stmts, err := InsertStatements(s.QB, table, records, s.BatchSize)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := s.Exec(ctx, stmt.SQL, stmt.Args...); err != nil {
			return errors.Wrapf(err, "failed to insert into %s", table)
		}
	}
	s.log.Debugw("inserted", logger.FieldTable, table, logger.FieldCount, len(records))
	return nil
}

func (s *SQLSession) Commit(ctx context.Context) error {
	if s.tx == nil {
		return errors.New("no open transaction")
	}
	err := s.tx.Commit()
	s.tx = nil
	if err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

// Rollback is a no-op without an open transaction.
func (s *SQLSession) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Wrap(err, "failed to roll back transaction")
	}
	return nil
}

// Exec runs a statement inside the open transaction, if any.
func (s *SQLSession) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	var ex execer = s.DB
	if s.tx != nil {
		ex = s.tx
	}
	return ex.ExecContext(ctx, query, args...)
}

func (s *SQLSession) Close() error {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
