package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// patchBuilder accumulates SET clauses for partial updates. Column names are
// compile-time constants supplied by the callers, never request input.
type patchBuilder struct {
	sets []string
	args []any
}

func (b *patchBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s=$%d", column, len(b.args)))
}

func (b *patchBuilder) empty() bool {
	return len(b.sets) == 0
}

// updateQuery renders "UPDATE <table> SET ... WHERE id=$n" and the full
// argument list including the trailing id.
func (b *patchBuilder) updateQuery(table string, id int64) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id=$%d", table, strings.Join(b.sets, ", "), len(args))
	return query, args
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
