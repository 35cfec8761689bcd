package repos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yungbote/studyforge-backend/internal/generation"
)

// User-facing guidance templates. These strings are part of the observable
// contract; tests pin them.
const (
	MsgSchemaNotMigrated   = "database schema not migrated: run the latest migrations and try again"
	MsgMigrationIncomplete = "database migration incomplete: column %q requires a newer schema"
	MsgForeignKeyViolation = "write rejected by a foreign-key constraint: the referenced row does not exist"
	MsgUniqueViolation     = "write rejected by a unique constraint: an identical row already exists"
	MsgWriteFailed         = "database write failed"
)

// legacyColumns are the known pre-migration not-null columns whose violations
// signal a half-applied schema rather than bad input.
var legacyColumns = map[string]bool{
	"topic":          true,
	"duration_weeks": true,
	"level":          true,
}

// ClassifyWriteError maps backend write failures onto the closed set of
// user-facing guidance messages. Postgres error codes are matched first;
// substring checks mirror the same cases for non-pg drivers.
func ClassifyWriteError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "42P01": // undefined_table
			return generation.NewError(generation.CodePersistence, op, MsgSchemaNotMigrated, err)
		case "23502": // not_null_violation
			if legacyColumns[pgErr.ColumnName] {
				return generation.NewError(generation.CodePersistence, op,
					fmt.Sprintf(MsgMigrationIncomplete, pgErr.ColumnName), err)
			}
			return generation.NewError(generation.CodePersistence, op, MsgWriteFailed, err)
		case "23503": // foreign_key_violation
			return generation.NewError(generation.CodePersistence, op, MsgForeignKeyViolation, err)
		case "23505": // unique_violation
			return generation.NewError(generation.CodePersistence, op, MsgUniqueViolation, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no such table"),
		strings.Contains(msg, "undefined table"),
		strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist"):
		return generation.NewError(generation.CodePersistence, op, MsgSchemaNotMigrated, err)
	case strings.Contains(msg, "not null") || strings.Contains(msg, "not-null"):
		if col, ok := legacyColumnIn(msg); ok {
			return generation.NewError(generation.CodePersistence, op,
				fmt.Sprintf(MsgMigrationIncomplete, col), err)
		}
		return generation.NewError(generation.CodePersistence, op, MsgWriteFailed, err)
	case strings.Contains(msg, "foreign key"):
		return generation.NewError(generation.CodePersistence, op, MsgForeignKeyViolation, err)
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return generation.NewError(generation.CodePersistence, op, MsgUniqueViolation, err)
	default:
		return generation.NewError(generation.CodePersistence, op, MsgWriteFailed, err)
	}
}

func legacyColumnIn(msg string) (string, bool) {
	for col := range legacyColumns {
		if strings.Contains(msg, col) {
			return col, true
		}
	}
	return "", false
}
