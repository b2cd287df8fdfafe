package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sustainify/server/store"
	"github.com/sustainify/server/testutil"
)

func TestSeedUsers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := store.New(conn, nil)
	ctx := context.Background()

	n, err := seedUsers(ctx, s, false)
	require.NoError(t, err)
	assert.Equal(t, len(demoUsers), n)

	top, err := s.TopUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", top.Username)
	assert.Equal(t, "john.doe@example.com", top.Email)
	assert.Equal(t, int64(950), top.SustainabilityScore)

	// Second run is a no-op
	n, err = seedUsers(ctx, s, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := s.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(demoUsers), count)
}

func TestSeedUsersForce(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	s := store.New(conn, nil)

	testutil.CreateTestUser(t, conn, "existing", 1)

	n, err := seedUsers(context.Background(), s, true)
	require.NoError(t, err)
	assert.Equal(t, len(demoUsers), n)

	count, err := s.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(demoUsers)+1, count)
}
