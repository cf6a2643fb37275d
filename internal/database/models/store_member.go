package models

import (
	"time"

	"github.com/google/uuid"
)

// StoreRole is the role a user holds within a store. Roles form an ordered
// hierarchy; a higher role satisfies any lower requirement.
type StoreRole string

const (
	StoreRoleMember StoreRole = "member"
	StoreRoleStaff  StoreRole = "staff"
	StoreRoleAdmin  StoreRole = "admin"
	StoreRoleOwner  StoreRole = "owner"
)

// Rank returns the hierarchy level of the role. Unknown roles rank zero,
// below member, so they never satisfy a requirement.
func (r StoreRole) Rank() int {
	switch r {
	case StoreRoleMember:
		return 1
	case StoreRoleStaff:
		return 2
	case StoreRoleAdmin:
		return 3
	case StoreRoleOwner:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether the role satisfies the required role.
func (r StoreRole) AtLeast(required StoreRole) bool {
	return r.Rank() >= required.Rank()
}

// StoreMember is the associative record granting a user a role in a store.
// The (user, store) pair is unique.
type StoreMember struct {
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_store_members_user_store;index"`
	StoreID   uuid.UUID `json:"store_id" gorm:"type:uuid;not null;uniqueIndex:idx_store_members_user_store;index"`
	Role      StoreRole `json:"role" gorm:"type:varchar(50);not null;default:'member'"`
	CreatedAt time.Time `json:"created_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Store *Store `json:"store,omitempty" gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StoreMember
func (StoreMember) TableName() string {
	return "store_members"
}
