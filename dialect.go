package beerfest

import "database/sql"

var (
	db_            *sql.DB
	defaultDialect Dialect
)

// Dialect covers the SQL differences between supported databases.
type Dialect interface {
	Now() string
	Param(i int) string
	QuoteIdentifier(string) string
	SerialPrimaryKey() string
}

func Database() *sql.DB {
	return db_
}

func DefaultDialect() Dialect {
	return defaultDialect
}

func SetDialect(dialect Dialect) {
	defaultDialect = dialect
}

func UseDatabase(dbConnection *sql.DB) {
	db_ = dbConnection
}
