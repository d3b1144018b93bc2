package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/arffkit/pkg/arff"
)

// LoadResult describes a completed load.
type LoadResult struct {
	ID      string
	Table   string
	Columns []string
	Rows    int
}

// Load replaces table with the contents of doc. Column types follow the
// attribute datatypes; configured null values become NULL. Everything runs
// in one transaction, so a failure leaves the database unchanged.
func (s *Store) Load(ctx context.Context, doc *arff.Document, table string) (*LoadResult, error) {
	if table == "" {
		table = TableName(doc.Relation)
	}
	if len(doc.Attributes) == 0 {
		return nil, fmt.Errorf("relation %q has no attributes to load", doc.Relation)
	}

	values, err := s.convertRows(doc)
	if err != nil {
		return nil, err
	}

	columns := columnNames(doc.Attributes)
	result := &LoadResult{
		ID:      uuid.New().String(),
		Table:   table,
		Columns: columns,
		Rows:    len(values),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.createTable(ctx, tx, table, columns, doc.Attributes); err != nil {
		return nil, err
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), s.dialect.placeholders(len(columns))) //nolint:gosec // identifiers are quoted
	for i, row := range values {
		if _, err := tx.ExecContext(ctx, insert, row...); err != nil {
			return nil, &arff.RowError{Row: i + 1, Err: fmt.Errorf("failed to insert: %w", err)}
		}
	}

	if s.migrated {
		if err := s.recordLoad(ctx, tx, doc, result); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit load: %w", err)
	}

	s.logger.Info("loaded relation", "relation", doc.Relation, "table", table, "rows", result.Rows)
	return result, nil
}

func (s *Store) createTable(ctx context.Context, tx *sql.Tx, table string, columns []string, attrs []arff.Attribute) error {
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(table)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col) + " " + s.dialect.columnType(attrs[i].Type)
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
	s.logger.Debug("creating table", "table", table, "columns", len(columns))
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

// convertRows turns every row into bind values before anything is written.
func (s *Store) convertRows(doc *arff.Document) ([][]any, error) {
	out := make([][]any, len(doc.Rows))
	for i, row := range doc.Rows {
		if len(row) != len(doc.Attributes) {
			return nil, &arff.RowError{
				Row: i + 1,
				Err: fmt.Errorf("%w: %d fields, %d attributes", arff.ErrRowSchemaMismatch, len(row), len(doc.Attributes)),
			}
		}
		vals := make([]any, len(row))
		for j, field := range row {
			v, err := s.convertValue(field, doc.Attributes[j].Type)
			if err != nil {
				return nil, &arff.RowError{Row: i + 1, Err: fmt.Errorf("attribute %q: %w", doc.Attributes[j].Name, err)}
			}
			vals[j] = v
		}
		out[i] = vals
	}
	return out, nil
}

func (s *Store) convertValue(field string, dt arff.Datatype) (any, error) {
	if s.nulls[field] {
		return nil, nil
	}
	switch dt.Kind {
	case arff.KindInteger:
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", field)
		}
		return n, nil
	case arff.KindReal, arff.KindNumeric:
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		return f, nil
	default:
		return field, nil
	}
}

func (s *Store) recordLoad(ctx context.Context, tx *sql.Tx, doc *arff.Document, res *LoadResult) error {
	_, err := tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO arff_relations (id, relation, source_path, table_name, attribute_count, row_count, loaded_at) VALUES (%s)`,
			s.dialect.placeholders(7)),
		res.ID, doc.Relation, doc.SourcePath, res.Table, len(doc.Attributes), res.Rows, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record load: %w", err)
	}

	insertAttr := fmt.Sprintf(`INSERT INTO arff_attributes (relation_id, position, name, column_name, datatype) VALUES (%s)`,
		s.dialect.placeholders(5))
	for i, attr := range doc.Attributes {
		if _, err := tx.ExecContext(ctx, insertAttr, res.ID, i+1, attr.Name, res.Columns[i], attr.Type.String()); err != nil {
			return fmt.Errorf("failed to record attribute %q: %w", attr.Name, err)
		}
	}
	return nil
}

// Loads returns catalog entries, newest first.
func (s *Store) Loads(ctx context.Context) ([]LoadRecord, error) {
	if !s.migrated {
		return nil, fmt.Errorf("catalog not available for %s", s.dialect.name)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, relation, source_path, table_name, attribute_count, row_count FROM arff_relations ORDER BY loaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []LoadRecord
	for rows.Next() {
		var r LoadRecord
		if err := rows.Scan(&r.ID, &r.Relation, &r.SourcePath, &r.Table, &r.Attributes, &r.Rows); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog: %w", err)
	}
	return out, nil
}

// LoadRecord is one catalog entry.
type LoadRecord struct {
	ID         string
	Relation   string
	SourcePath string
	Table      string
	Attributes int
	Rows       int
}
