package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a staff member (cashier, waiter, cook or admin).
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName  string         `gorm:"size:255;not null" json:"first_name"`
	LastName   string         `gorm:"size:255;not null" json:"last_name"`
	Username   string         `gorm:"size:255;unique" json:"username"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Roles  []Role  `gorm:"many2many:model_has_roles;foreignKey:ID;joinForeignKey:model_id;References:ID;joinReferences:role_id" json:"roles,omitempty"`
	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasRole checks whether the user carries the given role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// GetPermissions returns the deduplicated permission names across all roles.
func (u *User) GetPermissions() []string {
	seen := make(map[string]bool)
	for _, role := range u.Roles {
		for _, permission := range role.Permissions {
			seen[permission.Name] = true
		}
	}

	result := make([]string, 0, len(seen))
	for p := range seen {
		result = append(result, p)
	}
	return result
}

// Role represents a role in the RBAC system
type Role struct {
	ID          uint         `gorm:"primary_key" json:"id"`
	Name        string       `gorm:"size:255;not null" json:"name"`
	GuardName   string       `gorm:"size:255;default:'web'" json:"guard_name"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Permissions []Permission `gorm:"many2many:role_has_permissions;foreignKey:ID;joinForeignKey:role_id;References:ID;joinReferences:permission_id" json:"permissions,omitempty"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// Permission represents a permission in the RBAC system
type Permission struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	GuardName string    `gorm:"size:255;default:'web'" json:"guard_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Permission model
func (Permission) TableName() string {
	return "permissions"
}
