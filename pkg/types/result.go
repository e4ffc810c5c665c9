package types

// TableStatus classifies the outcome of one table's creation attempt during
// Initialize.
type TableStatus string

const (
	TableCreated TableStatus = "created"
	TableExisted TableStatus = "existed"
	TableFailed  TableStatus = "failed"
)

// SeedStatus classifies the settings-row seeding step during Initialize.
type SeedStatus string

const (
	SeedInserted SeedStatus = "inserted"
	SeedKept     SeedStatus = "kept"
	SeedSkipped  SeedStatus = "skipped"
)

// TableResult records the outcome of a single table's creation attempt.
// Err is non-nil only when Status is TableFailed.
type TableResult struct {
	Name   string
	Status TableStatus
	Err    error
}

// InitReport aggregates the outcome of a schema initialization run so that
// callers can assert on startup state instead of scraping logs.
type InitReport struct {
	Tables []TableResult
	Seed   SeedStatus
}

// Failed returns the results of every table whose creation failed.
func (r InitReport) Failed() []TableResult {
	var failed []TableResult
	for _, t := range r.Tables {
		if t.Status == TableFailed {
			failed = append(failed, t)
		}
	}
	return failed
}
