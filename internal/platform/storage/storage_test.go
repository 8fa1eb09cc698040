package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos, closeFn, err := Open(context.Background(), logger, &config.Config{StorageDriver: config.StorageMemory})
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, repos.AccountRepo)
	assert.NotNil(t, repos.TransactionRepo)
	assert.NotNil(t, repos.TransferRepo)
	assert.NotNil(t, repos.CategoryRepo)
	assert.NotNil(t, repos.UserRepo)

	_, _, err = Open(context.Background(), logger, &config.Config{StorageDriver: "sqlite"})
	assert.ErrorContains(t, err, "unknown storage driver")
}
