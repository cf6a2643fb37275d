package tenancy

import (
	"errors"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access answers role questions for (user, store) pairs.
type Access struct {
	members repository.StoreMemberRepositoryInterface
}

// NewAccess creates a new Access checker
func NewAccess(members repository.StoreMemberRepositoryInterface) *Access {
	return &Access{members: members}
}

// CheckAccess verifies the user holds at least the required role in the
// store. Superadmins pass every check; everyone else needs a membership
// record whose role ranks at or above the requirement.
func (a *Access) CheckAccess(user *models.User, storeID uuid.UUID, required models.StoreRole) error {
	if user.IsSuperadmin {
		return nil
	}
	member, err := a.members.Get(user.ID, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInsufficientRole
		}
		return err
	}
	if !member.Role.AtLeast(required) {
		return apperrors.ErrInsufficientRole
	}
	return nil
}

// Role returns the user's role in the store, or empty when the user is not
// a member. Superadmins report as owner.
func (a *Access) Role(user *models.User, storeID uuid.UUID) (models.StoreRole, error) {
	if user.IsSuperadmin {
		return models.StoreRoleOwner, nil
	}
	member, err := a.members.Get(user.ID, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return member.Role, nil
}
