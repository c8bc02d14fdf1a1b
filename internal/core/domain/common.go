package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Actor identifies the authenticated caller of a mutating operation.
// Role resolution happens in the external identity provider; the engine only
// checks the role it is handed.
type Actor struct {
	UserID string
	Role   ActorRole
}

// ActorRole is the coarse role carried in the auth token.
type ActorRole string

const (
	RoleAdmin    ActorRole = "ADMIN"
	RoleEmployee ActorRole = "EMPLOYEE"
	RoleService  ActorRole = "SERVICE" // data-entry collaborators (CSV import, chat flow)
)
