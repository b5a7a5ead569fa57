package database

import (
	"context"
	"testing"

	"warehouse/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolFromURL_InvalidConnectionString(t *testing.T) {
	pool, err := NewPoolFromURL(context.Background(), "postgres://%zz", config.DatabaseConfig{}, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), "failed to parse database config")
}
