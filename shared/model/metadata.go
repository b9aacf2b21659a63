package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// Stamp fills the audit fields for a freshly created row.
func (m *Metadata) Stamp(userID string, now time.Time) {
	m.CreatedAt = now
	m.ModifiedAt = now
	m.CreatedBy = userID
	m.ModifiedBy = userID
}
