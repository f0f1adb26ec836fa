package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "appointments")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "appointments", []byte(`[{"id":"a1"}]`)))
	got, err := s.Get(ctx, "appointments")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a1"}]`, string(got))

	require.NoError(t, s.Set(ctx, "appointments", []byte(`[]`)))
	got, err = s.Get(ctx, "appointments")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	require.NoError(t, s.Remove(ctx, "appointments"))
	_, err = s.Get(ctx, "appointments")
	assert.ErrorIs(t, err, ErrNotFound)

	// removing twice is fine
	assert.NoError(t, s.Remove(ctx, "appointments"))

	assert.Error(t, s.Set(ctx, "../escape", []byte(`1`)))
	assert.Error(t, s.Set(ctx, "", []byte(`1`)))
}

func TestMemory(t *testing.T) {
	exerciseStorage(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	v := []byte(`[1]`)
	require.NoError(t, m.Set(ctx, "k", v))
	v[1] = '2'
	got, _ := m.Get(ctx, "k")
	assert.Equal(t, `[1]`, string(got))
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	exerciseStorage(t, f)
}

func TestFileLayoutAndNoLeftovers(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set(context.Background(), "users", []byte(`[]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	r := NewRedis(client, "carelink:")
	exerciseStorage(t, r)

	require.NoError(t, r.Set(context.Background(), "users", []byte(`[]`)))
	assert.True(t, mr.Exists("carelink:users"))
}

func TestRedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	r := NewRedis(client, "")
	err = r.Set(context.Background(), "users", []byte(`[]`))
	assert.Error(t, err)
	_, err = r.Get(context.Background(), "users")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestPostgresGet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	p := NewPostgres(mock)
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM local_storage").
		WithArgs("users").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":"u1"}]`)))
	got, err := p.Get(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"u1"}]`, string(got))

	mock.ExpectQuery("SELECT value FROM local_storage").
		WithArgs("vitals").
		WillReturnError(pgx.ErrNoRows)
	_, err = p.Get(ctx, "vitals")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSetAndRemove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	p := NewPostgres(mock)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("appointments", []byte(`[]`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, p.Set(ctx, "appointments", []byte(`[]`)))

	mock.ExpectExec("DELETE FROM local_storage").
		WithArgs("appointments").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, p.Remove(ctx, "appointments"))

	mock.ExpectExec("INSERT INTO local_storage").
		WithArgs("users", []byte(`[]`)).
		WillReturnError(errors.New("disk full"))
	assert.Error(t, p.Set(ctx, "users", []byte(`[]`)))

	require.NoError(t, mock.ExpectationsWereMet())
}
