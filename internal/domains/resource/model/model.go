// Package model maps the listing and lease tables that scheduling reads but never
// writes.
package model

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID          = "id"
	FieldOwnerID     = "owner_id"
	FieldName        = "name"
	FieldIsAvailable = "is_available"
)

const (
	LeaseTableName  = "leases"
	LeaseEntityName = "lease"

	LeaseFieldID         = "id"
	LeaseFieldResourceID = "resource_id"
	LeaseFieldTenantID   = "tenant_id"
)

type Resource struct {
	ID          string `db:"id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	IsAvailable bool   `db:"is_available"`
}

func (r Resource) Exists() bool {
	return r.ID != ""
}

// IsOpenForViewing reports whether requests for viewings are accepted.
func (r Resource) IsOpenForViewing() bool {
	return r.Exists() && r.IsAvailable
}

type Lease struct {
	ID         string `db:"id"`
	ResourceID string `db:"resource_id"`
	TenantID   string `db:"tenant_id"`
}
