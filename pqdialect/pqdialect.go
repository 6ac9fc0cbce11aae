package pqdialect

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
)

type PqDialect struct{}

func (dialect PqDialect) Now() string {
	return "NOW()"
}

func (dialect PqDialect) Param(identifier int) string {
	return "$" + strconv.Itoa(identifier)
}

func (dialect PqDialect) QuoteIdentifier(identifier string) string {
	var query strings.Builder
	for i, part := range strings.Split(identifier, ".") {
		if i > 0 {
			query.WriteString(".")
		}
		query.WriteString(pq.QuoteIdentifier(part))
	}
	return query.String()
}

func (dialect PqDialect) SerialPrimaryKey() string {
	return "SERIAL PRIMARY KEY"
}
