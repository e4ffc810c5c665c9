// Integration tests for the full data-layer lifecycle through the public
// API: open, initialize, query through the callback contract, close.
package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteerhub/steward/pkg/store"
	"github.com/volunteerhub/steward/pkg/types"
)

// openStore opens a store over a temporary SQLite database through the
// public factory.
func openStore(t *testing.T, dbPath string) types.Store {
	t.Helper()

	cfg := types.Config{
		Driver:   types.DriverSQLite,
		Database: dbPath,
		MaxConns: 4,
	}
	st, err := store.Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	st := openStore(t, filepath.Join(t.TempDir(), "steward.db"))

	report, err := st.Initialize(ctx)
	require.NoError(t, err)
	require.Empty(t, report.Failed())
	require.Equal(t, types.SeedInserted, report.Seed)

	// Insert a volunteer and a campaign signup through the shim.
	var volunteerID int64
	st.Execute(ctx,
		"INSERT INTO volunteers (email, full_name, created_at) VALUES (?, ?, ?)",
		[]any{"ana@example.org", "Ana", "2026-01-02 03:04:05"},
		func(info types.ExecInfo, err error) {
			require.NoError(t, err)
			require.Equal(t, int64(1), info.RowsAffected)
			volunteerID = info.LastInsertID
		})

	var campaignID int64
	st.Execute(ctx,
		"INSERT INTO campaigns (slug, title, status, goal_amount, created_at) VALUES (?, ?, ?, ?, ?)",
		[]any{"beach-cleanup", "Beach Cleanup", "active", 500.0, "2026-01-02 03:04:05"},
		func(info types.ExecInfo, err error) {
			require.NoError(t, err)
			campaignID = info.LastInsertID
		})

	st.Execute(ctx,
		"INSERT INTO campaign_signups (campaign_id, volunteer_id, status, signed_up_at) VALUES (?, ?, ?, ?)",
		[]any{campaignID, volunteerID, "confirmed", "2026-01-03 10:00:00"},
		func(info types.ExecInfo, err error) { require.NoError(t, err) })

	// Join through the shim and check the shape of the rows.
	st.QueryAll(ctx,
		`SELECT v.full_name, c.title FROM campaign_signups s
         JOIN volunteers v ON v.id = s.volunteer_id
         JOIN campaigns c ON c.id = s.campaign_id`, nil,
		func(rows []types.Row, err error) {
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "Ana", rows[0]["full_name"])
			assert.Equal(t, "Beach Cleanup", rows[0]["title"])
		})

	// Re-initialization keeps data and stays at one settings row.
	report, err = st.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.SeedKept, report.Seed)

	st.QueryOne(ctx, "SELECT COUNT(*) AS n FROM organization_settings", nil,
		func(row types.Row, err error) {
			require.NoError(t, err)
			assert.EqualValues(t, 1, row["n"])
		})

	require.NoError(t, st.Close())

	st.QueryOne(ctx, "SELECT 1", nil, func(row types.Row, err error) {
		assert.ErrorIs(t, err, types.ErrStoreClosed)
	})
}

func TestTwoBootsAgainstSameDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "steward.db")

	first := openStore(t, dbPath)
	report, err := first.Initialize(ctx)
	require.NoError(t, err)
	require.Equal(t, types.SeedInserted, report.Seed)
	require.NoError(t, first.Close())

	second := openStore(t, dbPath)
	report, err = second.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.SeedKept, report.Seed)
	for _, tr := range report.Tables {
		assert.Equal(t, types.TableExisted, tr.Status, "table %s", tr.Name)
	}

	second.QueryOne(ctx, "SELECT COUNT(*) AS n FROM organization_settings", nil,
		func(row types.Row, err error) {
			require.NoError(t, err)
			assert.EqualValues(t, 1, row["n"])
		})
}
