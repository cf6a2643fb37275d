package models

// User represents a global identity. Users are not scoped to a store;
// store access is granted through StoreMember rows. Emails are stored
// case-folded to lowercase.
type User struct {
	BaseModel
	FirstName    string  `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string  `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string  `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string  `json:"-" gorm:"not null;size:255"`
	IsVerified   bool    `json:"is_verified" gorm:"not null;default:false"`
	IsSuperadmin bool    `json:"is_superadmin" gorm:"not null;default:false"` // platform admin
	AvatarURL    *string `json:"avatar_url,omitempty" gorm:"size:500"`

	// Relationships
	Memberships []StoreMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
