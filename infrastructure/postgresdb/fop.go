package postgresdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Set of directions for data ordering.
const (
	ASC  = "ASC"
	DESC = "DESC"
)

// ApplyWhereClause appends the accumulated filter conditions to the query.
// Conditions are joined with AND; an empty set leaves the query untouched.
func ApplyWhereClause(buf *bytes.Buffer, conditions []string) {
	if len(conditions) == 0 {
		return
	}
	buf.WriteString(" WHERE ")
	buf.WriteString(strings.Join(conditions, " AND "))
}

// AddOrderByClause adds an ORDER BY clause with the primary key as a
// deterministic tiebreak.
func AddOrderByClause(buf *bytes.Buffer, orderField, pkField, direction string) error {
	quotedOrderField, err := QuoteIdentifier(orderField)
	if err != nil {
		return fmt.Errorf("invalid order field name: %w", err)
	}
	quotedPKField, err := QuoteIdentifier(pkField)
	if err != nil {
		return fmt.Errorf("invalid pk field name: %w", err)
	}

	if direction != ASC && direction != DESC {
		return fmt.Errorf("invalid order direction: %s", direction)
	}

	buf.WriteString(fmt.Sprintf(" ORDER BY %s %s", quotedOrderField, direction))

	if orderField != pkField {
		buf.WriteString(fmt.Sprintf(", %s %s", quotedPKField, direction))
	}

	return nil
}

// AddPageClause adds LIMIT/OFFSET for page-number pagination.
func AddPageClause(buf *bytes.Buffer, data pgx.NamedArgs, limit, offset int) {
	buf.WriteString(" LIMIT @limit OFFSET @offset")
	data["limit"] = limit
	data["offset"] = offset
}
