package seeder

import (
	"slices"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
)

// DependencyGraph orders tables so every table comes after the tables it
// references. Tables are visited in the order they were added, so the result
// is stable across runs.
type DependencyGraph struct {
	tables []domain.Table
	deps   map[domain.Table][]domain.Table
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[domain.Table][]domain.Table),
	}
}

func (g *DependencyGraph) AddTable(table domain.Table, dependencies ...domain.Table) {
	if _, ok := g.deps[table]; !ok {
		g.tables = append(g.tables, table)
	}
	g.deps[table] = dependencies
}

// NewDomainGraph registers every generated table with its foreign keys.
func NewDomainGraph() *DependencyGraph {
	g := NewDependencyGraph()
	for _, t := range domain.Tables() {
		g.AddTable(t, t.References()...)
	}
	return g
}

func (g *DependencyGraph) BuildInsertionOrder() ([]domain.Table, error) {
	visited := make(map[domain.Table]bool)
	temp := make(map[domain.Table]bool)
	var order []domain.Table

	var visit func(domain.Table) error
	visit = func(table domain.Table) error {
		if temp[table] {
			return errors.Newf("circular dependency detected involving table: %s", table)
		}
		if visited[table] {
			return nil
		}

		temp[table] = true
		for _, dep := range g.deps[table] {
			if dep == table {
				continue
			}
			if _, known := g.deps[dep]; !known {
				return errors.Newf("table %s references unknown table %s", table, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[table] = false
		visited[table] = true
		order = append(order, table)
		return nil
	}

	for _, table := range g.tables {
		if err := visit(table); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// TruncationOrder is the insertion order reversed, children first.
func (g *DependencyGraph) TruncationOrder() ([]domain.Table, error) {
	order, err := g.BuildInsertionOrder()
	if err != nil {
		return nil, err
	}
	out := slices.Clone(order)
	slices.Reverse(out)
	return out, nil
}
