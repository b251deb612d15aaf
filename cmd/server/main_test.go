package main

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	reset, _, err := cmd.Find([]string{"migrate", "reset"})
	require.NoError(t, err)
	assert.Equal(t, "reset", reset.Name())

	assert.NotNil(t, cmd.PersistentFlags().Lookup("database-dsn"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("redis-addr"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("mongo-uri"))
}

func TestMigrateCmd_RequiresDSN(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", base64.StdEncoding.EncodeToString([]byte("test-secret-key-32-bytes-long!!!")))
	t.Setenv("DATABASE_DSN", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "up"})

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorContains(t, err, "database DSN is required")
}
