package postgresql

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows yields a fixed number of zero-valued rows, then reports the
// configured iteration error.
type fakeRows struct {
	remaining int
	err       error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Scan(dest ...any) error                       { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.remaining > 0 {
		r.remaining--
		return true
	}
	return false
}

// A connection error during iteration must not be swallowed: a
// truncated entry list would otherwise feed a plausible but wrong
// period summary.
func TestCollectors_PropagateIterationError(t *testing.T) {
	connErr := errors.New("connection reset")

	t.Run("entries", func(t *testing.T) {
		_, err := collectEntries(&fakeRows{remaining: 1, err: connErr})
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
	})

	t.Run("employees", func(t *testing.T) {
		_, err := collectEmployees(&fakeRows{remaining: 1, err: connErr})
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
	})

	t.Run("summaries", func(t *testing.T) {
		_, err := collectSummaries(&fakeRows{remaining: 1, err: connErr})
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
	})

	t.Run("adjustments", func(t *testing.T) {
		_, err := collectAdjustments(&fakeRows{remaining: 1, err: connErr})
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
	})
}

func TestCollectors_CleanIteration(t *testing.T) {
	entries, err := collectEntries(&fakeRows{remaining: 2})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	employees, err := collectEmployees(&fakeRows{remaining: 0})
	require.NoError(t, err)
	assert.Empty(t, employees)
}
