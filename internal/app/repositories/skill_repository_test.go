package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haca/placement/internal/pkg/apperrors"
)

// stubRow replays one scan result
type stubRow struct {
	id   int64
	name string
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	*dest[1].(*string) = r.name
	return nil
}

// scriptedDB hands out canned rows to successive QueryRow calls and records
// every statement it receives.
type scriptedDB struct {
	rows    []stubRow
	execTag pgconn.CommandTag
	execErr error
	stmts   []string
}

func (db *scriptedDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	db.stmts = append(db.stmts, sql)
	row := db.rows[0]
	db.rows = db.rows[1:]
	return row
}

func (db *scriptedDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	db.stmts = append(db.stmts, sql)
	return nil, errors.New("not scripted")
}

func (db *scriptedDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	db.stmts = append(db.stmts, sql)
	return db.execTag, db.execErr
}

func (db *scriptedDB) inserts() int {
	n := 0
	for _, stmt := range db.stmts {
		if strings.HasPrefix(strings.TrimSpace(stmt), "INSERT") {
			n++
		}
	}
	return n
}

func TestSkillRepositoryGetOrCreate(t *testing.T) {
	t.Run("existing skill is reused without an insert", func(t *testing.T) {
		db := &scriptedDB{rows: []stubRow{{id: 3, name: "React"}}}
		repo := &SkillRepository{db: db}

		skill, err := repo.GetOrCreate(context.Background(), "React")

		require.NoError(t, err)
		assert.Equal(t, int64(3), skill.ID)
		assert.Equal(t, "React", skill.Name)
		assert.Zero(t, db.inserts())
	})

	t.Run("missing skill is inserted", func(t *testing.T) {
		db := &scriptedDB{rows: []stubRow{
			{err: pgx.ErrNoRows},
			{id: 9, name: "Figma"},
		}}
		repo := &SkillRepository{db: db}

		skill, err := repo.GetOrCreate(context.Background(), "Figma")

		require.NoError(t, err)
		assert.Equal(t, int64(9), skill.ID)
		assert.Equal(t, 1, db.inserts())
	})

	t.Run("lost insert race falls back to a re-fetch", func(t *testing.T) {
		raceErr := &pgconn.PgError{Code: "23505", ConstraintName: "skills_name_key"}
		db := &scriptedDB{rows: []stubRow{
			{err: pgx.ErrNoRows},
			{err: raceErr},
			{id: 5, name: "SQL"},
		}}
		repo := &SkillRepository{db: db}

		skill, err := repo.GetOrCreate(context.Background(), "SQL")

		require.NoError(t, err)
		assert.Equal(t, int64(5), skill.ID)
		assert.Empty(t, db.rows, "expected lookup, insert and re-fetch")
	})

	t.Run("unrelated insert failure surfaces", func(t *testing.T) {
		db := &scriptedDB{rows: []stubRow{
			{err: pgx.ErrNoRows},
			{err: errors.New("connection reset")},
		}}
		repo := &SkillRepository{db: db}

		_, err := repo.GetOrCreate(context.Background(), "SQL")
		assert.Error(t, err)
	})
}

func TestSkillRepositoryGetByName(t *testing.T) {
	db := &scriptedDB{rows: []stubRow{{err: pgx.ErrNoRows}}}
	repo := &SkillRepository{db: db}

	_, err := repo.GetByName(context.Background(), "Cobol")
	assert.ErrorIs(t, err, apperrors.ErrSkillNotFound)
}

func TestTokenRepositoryDeleteExpiredTokens(t *testing.T) {
	db := &scriptedDB{execTag: pgconn.NewCommandTag("DELETE 3")}
	repo := &TokenRepository{db: db, sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}

	deleted, err := repo.DeleteExpiredTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	require.Len(t, db.stmts, 1)
	assert.Contains(t, db.stmts[0], "DELETE FROM refresh_tokens")
}
