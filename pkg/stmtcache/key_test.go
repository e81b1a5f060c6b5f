package stmtcache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sqlkit/pkg/stmtcache"
)

func TestKey_Equal(t *testing.T) {
	tests := []struct {
		name  string
		a, b  stmtcache.Key
		equal bool
	}{
		{
			name:  "same sql",
			a:     stmtcache.NewKey("SELECT 1"),
			b:     stmtcache.NewKey("SELECT 1"),
			equal: true,
		},
		{
			name:  "different sql",
			a:     stmtcache.NewKey("SELECT 1"),
			b:     stmtcache.NewKey("SELECT 2"),
			equal: false,
		},
		{
			name:  "explicit defaults match the plain key",
			a:     stmtcache.NewKey("SELECT 1"),
			b:     stmtcache.NewKeyWithCursor("SELECT 1", stmtcache.ForwardOnly, stmtcache.ReadOnly),
			equal: true,
		},
		{
			name:  "cursor type discriminates",
			a:     stmtcache.NewKeyWithCursor("SELECT 1", stmtcache.ScrollInsensitive, stmtcache.ReadOnly),
			b:     stmtcache.NewKeyWithCursor("SELECT 1", stmtcache.ScrollSensitive, stmtcache.ReadOnly),
			equal: false,
		},
		{
			name:  "concurrency discriminates",
			a:     stmtcache.NewKeyWithCursor("SELECT 1", stmtcache.ForwardOnly, stmtcache.ReadOnly),
			b:     stmtcache.NewKeyWithCursor("SELECT 1", stmtcache.ForwardOnly, stmtcache.Updatable),
			equal: false,
		},
		{
			name:  "unset holdability differs from explicit",
			a:     stmtcache.NewKeyWithCursor("SELECT 1", stmtcache.ForwardOnly, stmtcache.ReadOnly),
			b:     stmtcache.NewKeyWithHoldability("SELECT 1", stmtcache.ForwardOnly, stmtcache.ReadOnly, stmtcache.CloseAtCommit),
			equal: false,
		},
		{
			name:  "matching holdability",
			a:     stmtcache.NewKeyWithHoldability("SELECT 1", stmtcache.ForwardOnly, stmtcache.ReadOnly, stmtcache.HoldOverCommit),
			b:     stmtcache.NewKeyWithHoldability("SELECT 1", stmtcache.ForwardOnly, stmtcache.ReadOnly, stmtcache.HoldOverCommit),
			equal: true,
		},
		{
			name:  "generated keys modes are distinct",
			a:     stmtcache.NewKeyWithGeneratedKeys("INSERT INTO t VALUES (1)", stmtcache.ReturnGeneratedKeys),
			b:     stmtcache.NewKeyWithGeneratedKeys("INSERT INTO t VALUES (1)", stmtcache.NoGeneratedKeys),
			equal: false,
		},
		{
			name:  "declining generated keys differs from not asking",
			a:     stmtcache.NewKeyWithGeneratedKeys("INSERT INTO t VALUES (1)", stmtcache.NoGeneratedKeys),
			b:     stmtcache.NewKey("INSERT INTO t VALUES (1)"),
			equal: false,
		},
		{
			name:  "same column indexes",
			a:     stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{1, 2}),
			b:     stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{1, 2}),
			equal: true,
		},
		{
			name:  "column index order matters",
			a:     stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{1, 2}),
			b:     stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{2, 1}),
			equal: false,
		},
		{
			name:  "empty column indexes differ from none",
			a:     stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{}),
			b:     stmtcache.NewKey("INSERT INTO t VALUES (1)"),
			equal: false,
		},
		{
			name:  "same column names",
			a:     stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"id"}),
			b:     stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"id"}),
			equal: true,
		},
		{
			name:  "different column names",
			a:     stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"id"}),
			b:     stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"uid"}),
			equal: false,
		},
		{
			name:  "column indexes never match column names",
			a:     stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{1}),
			b:     stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"id"}),
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a), "equality must be symmetric")
		})
	}
}

func TestKey_ConstructorCopiesSlices(t *testing.T) {
	t.Run("column indexes", func(t *testing.T) {
		indexes := []int{1, 2}
		key := stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", indexes)
		indexes[0] = 99

		want := stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{1, 2})
		assert.True(t, key.Equal(want))
	})

	t.Run("column names", func(t *testing.T) {
		names := []string{"id"}
		key := stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", names)
		names[0] = "uid"

		want := stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"id"})
		assert.True(t, key.Equal(want))
	})
}

func TestKey_SQL(t *testing.T) {
	key := stmtcache.NewKeyWithCursor("SELECT a FROM t", stmtcache.ScrollSensitive, stmtcache.Updatable)
	assert.Equal(t, "SELECT a FROM t", key.SQL())
}

func TestKey_String(t *testing.T) {
	t.Run("plain key renders sql only", func(t *testing.T) {
		assert.Equal(t, "SELECT 1", stmtcache.NewKey("SELECT 1").String())
	})

	t.Run("non-default options are rendered", func(t *testing.T) {
		key := stmtcache.NewKeyWithHoldability("SELECT 1", stmtcache.ScrollInsensitive, stmtcache.Updatable, stmtcache.CloseAtCommit)
		assert.Equal(t, "SELECT 1 cursor=scroll_insensitive concurrency=updatable holdability=close_at_commit", key.String())
	})

	t.Run("column sequences are rendered", func(t *testing.T) {
		key := stmtcache.NewKeyWithColumnIndexes("INSERT INTO t VALUES (1)", []int{1, 2})
		assert.Equal(t, "INSERT INTO t VALUES (1) column_indexes=1,2", key.String())

		key = stmtcache.NewKeyWithColumnNames("INSERT INTO t VALUES (1)", []string{"id", "uid"})
		assert.Equal(t, "INSERT INTO t VALUES (1) column_names=id,uid", key.String())
	})
}

func TestKey_EnumStrings(t *testing.T) {
	assert.Equal(t, "forward_only", stmtcache.ForwardOnly.String())
	assert.Equal(t, "scroll_insensitive", stmtcache.ScrollInsensitive.String())
	assert.Equal(t, "scroll_sensitive", stmtcache.ScrollSensitive.String())
	assert.Equal(t, "read_only", stmtcache.ReadOnly.String())
	assert.Equal(t, "updatable", stmtcache.Updatable.String())
	assert.Equal(t, "hold_over_commit", stmtcache.HoldOverCommit.String())
	assert.Equal(t, "close_at_commit", stmtcache.CloseAtCommit.String())
	assert.Equal(t, "return_generated_keys", stmtcache.ReturnGeneratedKeys.String())
	assert.Equal(t, "no_generated_keys", stmtcache.NoGeneratedKeys.String())
	assert.Equal(t, "unknown", stmtcache.CursorType(42).String())
}
