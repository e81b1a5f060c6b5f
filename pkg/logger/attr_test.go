package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sqlkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Run("nil error yields empty attr", func(t *testing.T) {
		assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	})

	t.Run("error is recorded under the error key", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)

		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestErrors(t *testing.T) {
	t.Run("all nil yields empty attr", func(t *testing.T) {
		assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
	})

	t.Run("nil entries are skipped", func(t *testing.T) {
		first := errors.New("first")
		third := errors.New("third")
		attr := logger.Errors(first, nil, third)

		require.Equal(t, "errors", attr.Key)
		group := attr.Value.Group()
		require.Len(t, group, 2)
		assert.Equal(t, "0", group[0].Key)
		assert.Equal(t, "2", group[1].Key)
	})
}

func TestGroup(t *testing.T) {
	attr := logger.Group("cache", slog.String("name", "orders"), slog.Int("size", 3))

	require.Equal(t, "cache", attr.Key)
	group := attr.Value.Group()
	require.Len(t, group, 2)
	assert.Equal(t, "name", group[0].Key)
	assert.Equal(t, "size", group[1].Key)
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value string
	}{
		{"statement", logger.Statement("SELECT 1"), "statement", "SELECT 1"},
		{"statement name", logger.StatementName("sqlkit_abc"), "statement_name", "sqlkit_abc"},
		{"conn id", logger.ConnID("b2c0"), "conn_id", "b2c0"},
		{"cache", logger.Cache("orders"), "cache", "orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.String())
		})
	}
}
