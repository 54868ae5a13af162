package perkwatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perkwatch/perkwatch"
	"github.com/perkwatch/perkwatch/domain/competitor"
)

func newClient(t *testing.T) *perkwatch.Client {
	t.Helper()

	client, err := perkwatch.New(
		perkwatch.WithDatabaseURL("sqlite:///:memory:"),
		perkwatch.WithOpenAI("test-key"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew_RequiresDatabase(t *testing.T) {
	_, err := perkwatch.New(perkwatch.WithOpenAI("test-key"))
	require.ErrorIs(t, err, perkwatch.ErrNoDatabase)
}

func TestNew_RequiresProvider(t *testing.T) {
	_, err := perkwatch.New(perkwatch.WithSQLite(":memory:"))
	require.ErrorIs(t, err, perkwatch.ErrNoProvider)
}

func TestClient_CompetitorRoundTrip(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	saved, err := client.Store().Save(ctx, competitor.NewCompetitor("Acme"))
	require.NoError(t, err)

	got, err := client.Competitors.Get(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name())
	assert.False(t, got.HasSummary())
}

func TestClient_CloseIsIdempotent(t *testing.T) {
	client := newClient(t)
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
}
