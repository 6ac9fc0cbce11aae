package sqlitedialect

import "strings"

type SqliteDialect struct{}

func (dialect SqliteDialect) Now() string {
	return "CURRENT_TIMESTAMP"
}

func (dialect SqliteDialect) Param(int) string {
	return "?"
}

func (dialect SqliteDialect) QuoteIdentifier(identifier string) string {
	var query strings.Builder
	for i, part := range strings.Split(identifier, ".") {
		if i > 0 {
			query.WriteString(".")
		}
		query.WriteString(QuoteIdentifier(part))
	}
	return query.String()
}

func (dialect SqliteDialect) SerialPrimaryKey() string {
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
