package repos

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yungbote/studyforge-backend/internal/generation"
)

func TestClassifyWriteError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "pg undefined table",
			err:     &pgconn.PgError{Code: "42P01", Message: "relation \"courses\" does not exist"},
			wantMsg: MsgSchemaNotMigrated,
		},
		{
			name:    "pg not null on legacy column",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "topic"},
			wantMsg: fmt.Sprintf(MsgMigrationIncomplete, "topic"),
		},
		{
			name:    "pg not null on unknown column",
			err:     &pgconn.PgError{Code: "23502", ColumnName: "title"},
			wantMsg: MsgWriteFailed,
		},
		{
			name:    "pg foreign key violation",
			err:     &pgconn.PgError{Code: "23503"},
			wantMsg: MsgForeignKeyViolation,
		},
		{
			name:    "pg unique violation",
			err:     &pgconn.PgError{Code: "23505"},
			wantMsg: MsgUniqueViolation,
		},
		{
			name:    "sqlite missing table",
			err:     errors.New("no such table: courses"),
			wantMsg: MsgSchemaNotMigrated,
		},
		{
			name:    "text relation does not exist",
			err:     errors.New(`ERROR: relation "roadmaps" does not exist (SQLSTATE 42P01)`),
			wantMsg: MsgSchemaNotMigrated,
		},
		{
			name:    "sqlite not null on legacy column",
			err:     errors.New("NOT NULL constraint failed: courses.duration_weeks"),
			wantMsg: fmt.Sprintf(MsgMigrationIncomplete, "duration_weeks"),
		},
		{
			name:    "sqlite not null on unknown column",
			err:     errors.New("NOT NULL constraint failed: courses.title"),
			wantMsg: MsgWriteFailed,
		},
		{
			name:    "text foreign key",
			err:     errors.New("FOREIGN KEY constraint failed"),
			wantMsg: MsgForeignKeyViolation,
		},
		{
			name:    "text duplicate key",
			err:     errors.New(`duplicate key value violates unique constraint "users_pkey"`),
			wantMsg: MsgUniqueViolation,
		},
		{
			name:    "unrecognized failure",
			err:     errors.New("connection reset by peer"),
			wantMsg: MsgWriteFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			classified := ClassifyWriteError("CourseRepo.Create", tc.err)
			if classified == nil {
				t.Fatal("ClassifyWriteError returned nil for non-nil error")
			}
			if !generation.IsCode(classified, generation.CodePersistence) {
				t.Fatalf("CodeOf=%v, want %v", generation.CodeOf(classified), generation.CodePersistence)
			}
			if got := generation.MessageOf(classified); got != tc.wantMsg {
				t.Fatalf("message=%q, want %q", got, tc.wantMsg)
			}
			if !errors.Is(classified, tc.err) {
				t.Fatal("classified error does not wrap the original cause")
			}
		})
	}
}

func TestClassifyWriteErrorNil(t *testing.T) {
	if err := ClassifyWriteError("op", nil); err != nil {
		t.Fatalf("ClassifyWriteError(nil)=%v, want nil", err)
	}
}
