package beerfest

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one database row addressed by column name.
type Record struct {
	Table  string
	Values map[string]any
}

func (record *Record) Get(column string) any {
	return record.Values[column]
}

func (record *Record) Int64(column string) int64 {
	switch v := record.Values[column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func (record *Record) String(column string) string {
	switch v := record.Values[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// FindRecord selects the first row of table where column equals value.
func FindRecord(ctx context.Context, db *sql.DB, dialect Dialect, table string, column string, value any) (*Record, error) {
	if db == nil {
		return nil, UseDatabaseError{}
	}
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = %s LIMIT 1",
		dialect.QuoteIdentifier(table),
		dialect.QuoteIdentifier(column),
		dialect.Param(1))
	records, err := queryRecords(ctx, db, table, query, value)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrorNotFound{}
	}
	return records[0], nil
}

// FindRecords selects every row of table ordered by the given columns.
func FindRecords(ctx context.Context, db *sql.DB, dialect Dialect, table string, orderBy ...string) ([]*Record, error) {
	if db == nil {
		return nil, UseDatabaseError{}
	}
	var query strings.Builder
	query.WriteString("SELECT * FROM ")
	query.WriteString(dialect.QuoteIdentifier(table))
	for i, column := range orderBy {
		if i == 0 {
			query.WriteString(" ORDER BY ")
		} else {
			query.WriteString(", ")
		}
		query.WriteString(dialect.QuoteIdentifier(column))
	}
	return queryRecords(ctx, db, table, query.String())
}

func queryRecords(ctx context.Context, db *sql.DB, table string, query string, args ...any) ([]*Record, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		values, err := ScanRowToMap(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, &Record{Table: table, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ScanRowToMap scans the current row into a map keyed by column name.
func ScanRowToMap(rows *sql.Rows) (map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}
	if err := rows.Scan(pointers...); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(columns))
	for i, column := range columns {
		row[column] = values[i]
	}
	return row, nil
}
