package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/volunteerhub/steward/pkg/types"
)

// timeLayout is the timestamp format both engines accept for DATETIME
// columns.
const timeLayout = "2006-01-02 15:04:05"

// defaultSettings is the organization profile inserted on first boot.
var defaultSettings = struct {
	name         string
	description  string
	contactEmail string
	website      string
}{
	name:         "Volunteer Hub",
	description:  "Default organization profile created at first startup.",
	contactEmail: "contact@volunteerhub.example",
	website:      "https://volunteerhub.example",
}

const insertSettingsStmt = `INSERT INTO organization_settings
    (singleton, name, description, contact_email, website, instance_id, created_at)
    VALUES (1, ?, ?, ?, ?, ?, ?)`

// seedSettings inserts the default organization settings row when the table
// is empty. The count check is the fast path; the UNIQUE singleton column is
// what actually guarantees at most one row when two instances boot at once.
// A failing count query means the store is unreachable or not yet created,
// and the seed is skipped rather than failing boot. The caller holds the
// read lock.
func (s *Store) seedSettings(ctx context.Context) types.SeedStatus {
	n, err := s.countLocked(ctx, "SELECT COUNT(*) FROM organization_settings")
	if err != nil {
		s.log.Warn().Err(err).Msg("counting settings rows failed, skipping seed")
		return types.SeedSkipped
	}
	if n > 0 {
		return types.SeedKept
	}

	now := time.Now().UTC().Format(timeLayout)
	_, err = s.execLocked(ctx, s.translate(insertSettingsStmt),
		defaultSettings.name,
		defaultSettings.description,
		defaultSettings.contactEmail,
		defaultSettings.website,
		uuid.NewString(),
		now,
	)
	if err != nil {
		if isDuplicateRow(err) {
			// Lost the race to a concurrently booting instance.
			return types.SeedKept
		}
		s.log.Warn().Err(err).Msg("seeding organization settings failed")
		return types.SeedSkipped
	}
	s.log.Info().Msg("seeded default organization settings")
	return types.SeedInserted
}
