package postgres

import (
	"bytes"
	"context"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithIPv4Host(t *testing.T) {
	assert.Equal(t, "postgres://app@10.0.0.5:5432/logistica", withIPv4Host("postgres://app@10.0.0.5/logistica"))
	assert.Equal(t, "postgres://app@10.0.0.5:6543/logistica", withIPv4Host("postgres://app@10.0.0.5:6543/logistica"))
	// IPv6 literal: sin cambios
	assert.Equal(t, "postgres://app@[::1]:5432/logistica", withIPv4Host("postgres://app@[::1]:5432/logistica"))
	// DSN clave=valor: sin host en la URL
	assert.Equal(t, "host=db user=app", withIPv4Host("host=db user=app"))
}

func TestLookupIPv4_Literal(t *testing.T) {
	ip, err := lookupIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = lookupIPv4(context.Background(), "::1")
	assert.Error(t, err)
}

func TestQueryLogger_Niveles(t *testing.T) {
	var buf bytes.Buffer
	q := queryLogger{log: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	q.Log(context.Background(), tracelog.LogLevelDebug, "Query", map[string]any{"sql": "select 1"})
	assert.Empty(t, buf.String())

	q.Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "select 1"})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"sql":"select 1"`)
}
