package common

import (
	"regexp"
	"slices"

	"github.com/Masterminds/squirrel"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
)

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// DefaultBatchSize caps the rows sent in one multi-row INSERT.
const DefaultBatchSize = 100

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Statement is a rendered query and its bound arguments.
type Statement struct {
	SQL  string
	Args []interface{}
}

// InsertStatements renders records as multi-row INSERTs of at most batchSize
// rows each. Every record must belong to table and share its column list.
func InsertStatements(qb squirrel.StatementBuilderType, table domain.Table, records []domain.Record, batchSize int) ([]Statement, error) {
	if len(records) == 0 {
		return nil, nil
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if !IsValidIdentifier(table.String()) {
		return nil, errors.InvalidArgumentf("invalid table name: %s", table)
	}

	columns := records[0].Columns()
	for _, col := range columns {
		if !IsValidIdentifier(col) {
			return nil, errors.InvalidArgumentf("invalid column name in table %s: %s", table, col)
		}
	}

	stmts := make([]Statement, 0, (len(records)+batchSize-1)/batchSize)
	for chunk := range slices.Chunk(records, batchSize) {
		q := qb.Insert(table.String()).Columns(columns...)
		for _, rec := range chunk {
			if rec.Table() != table {
				return nil, errors.InvalidArgumentf("record for %s passed to %s", rec.Table(), table)
			}
			if !slices.Equal(rec.Columns(), columns) {
				return nil, errors.InvalidArgumentf("column mismatch in %s batch", table)
			}
			q = q.Values(rec.Values()...)
		}

		sql, args, err := q.ToSql()
		if err != nil {
			return nil, errors.Wrapf(err, "build insert for %s", table)
		}
		stmts = append(stmts, Statement{SQL: sql, Args: args})
	}
	return stmts, nil
}
