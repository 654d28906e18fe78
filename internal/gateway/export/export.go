// Package export implements a gateway that writes each table to a file
// instead of a database. Rows are buffered per session and written on commit.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/logger"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatCSV, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	default:
		return "", errors.InvalidArgumentf("unsupported export format: %s", s)
	}
}

// TableDump is the on-disk shape of a json or yaml export.
type TableDump struct {
	Table       string                   `json:"table" yaml:"table"`
	GeneratedAt string                   `json:"generated_at" yaml:"generated_at"`
	Count       int                      `json:"count" yaml:"count"`
	Columns     []string                 `json:"columns" yaml:"columns"`
	Rows        []map[string]interface{} `json:"rows" yaml:"rows"`
}

type Gateway struct {
	dir    string
	format Format
	now    func() time.Time

	open    bool
	order   []domain.Table
	pending map[domain.Table][]domain.Record
	written []string
}

func New(dir string, format Format) *Gateway {
	return &Gateway{
		dir:    dir,
		format: format,
		now:    time.Now,
	}
}

// Path returns the file a table is written to.
func (g *Gateway) Path(table domain.Table) string {
	return filepath.Join(g.dir, fmt.Sprintf("%s.%s", table, g.format))
}

// Written lists the files produced by the last commit.
func (g *Gateway) Written() []string {
	return g.written
}

func (g *Gateway) Begin(ctx context.Context) error {
	if g.open {
		return errors.New("export session already open")
	}
	g.open = true
	g.order = nil
	g.pending = make(map[domain.Table][]domain.Record)
	return nil
}

func (g *Gateway) BulkInsert(ctx context.Context, table domain.Table, records []domain.Record) error {
	if !g.open {
		return errors.New("no open export session")
	}
	for _, rec := range records {
		if rec.Table() != table {
			return errors.InvalidArgumentf("record for %s passed to %s", rec.Table(), table)
		}
	}
	if _, seen := g.pending[table]; !seen {
		g.order = append(g.order, table)
	}
	g.pending[table] = append(g.pending[table], records...)
	return nil
}

func (g *Gateway) Commit(ctx context.Context) error {
	if !g.open {
		return errors.New("no open export session")
	}
	defer g.reset()

	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create export directory")
	}

	g.written = g.written[:0]
	stamp := g.now().UTC().Format(time.RFC3339)
	for _, table := range g.order {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := g.Path(table)
		if err := g.writeTable(path, table, g.pending[table], stamp); err != nil {
			return errors.Wrapf(err, "failed to export %s", table)
		}
		g.written = append(g.written, path)
		logger.Logger.Debugw("exported", logger.FieldTable, table, logger.FieldCount, len(g.pending[table]), "path", path)
	}
	return nil
}

func (g *Gateway) Rollback(ctx context.Context) error {
	g.reset()
	return nil
}

// Truncate removes previously exported files for tables.
func (g *Gateway) Truncate(ctx context.Context, tables []domain.Table) error {
	for _, t := range tables {
		if err := os.Remove(g.Path(t)); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to remove %s", g.Path(t))
		}
	}
	return nil
}

func (g *Gateway) Close() error {
	g.reset()
	return nil
}

func (g *Gateway) reset() {
	g.open = false
	g.order = nil
	g.pending = nil
}

func (g *Gateway) writeTable(path string, table domain.Table, records []domain.Record, stamp string) error {
	var columns []string
	if len(records) > 0 {
		columns = records[0].Columns()
	}

	if g.format == FormatCSV {
		return writeCSV(path, columns, records)
	}

	dump := TableDump{
		Table:       table.String(),
		GeneratedAt: stamp,
		Count:       len(records),
		Columns:     columns,
		Rows:        make([]map[string]interface{}, 0, len(records)),
	}
	for _, rec := range records {
		row := make(map[string]interface{}, len(columns))
		values := rec.Values()
		for i, col := range rec.Columns() {
			row[col] = values[i]
		}
		dump.Rows = append(dump.Rows, row)
	}

	var (
		data []byte
		err  error
	)
	switch g.format {
	case FormatYAML:
		data, err = yaml.Marshal(dump)
	default:
		data, err = json.MarshalIndent(dump, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal data")
	}
	return os.WriteFile(path, data, 0644)
}

func writeCSV(path string, columns []string, records []domain.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		values := rec.Values()
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = fmt.Sprintf("%v", v)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
