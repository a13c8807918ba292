package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByName        = "name"
	orderByUpdated     = "updated_at"
	orderByLastChecked = "last_checked_at"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByName:        "name ASC",
	orderByUpdated:     "updated_at DESC",
	orderByLastChecked: "last_checked_at ASC NULLS FIRST",
}

const defaultOrderBy = "updated_at DESC"

const baseSheetsSelect = `SELECT ` + sheetColumns + `
FROM spec_sheets`

const countSheetsSelect = "SELECT COUNT(*) FROM spec_sheets"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a sheet
// query. It returns the data query, the count query and their positional
// parameters.
func (q *SheetQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Name != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", paramIdx))
		args = append(args, "%"+escapeLike(*q.Name)+"%")
		paramIdx++
	}

	if q.Reconciled != nil {
		conditions = append(conditions, fmt.Sprintf("reconciled = $%d", paramIdx))
		args = append(args, *q.Reconciled)
	}

	if q.Failing {
		conditions = append(conditions, "last_error <> ''")
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseSheetsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countSheetsSelect + whereClause

	return dataSQL, countSQL, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
