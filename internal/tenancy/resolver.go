package tenancy

import (
	"errors"
	"net"
	"strings"
	"time"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResolveDomain extracts the store domain for the request. The explicit
// X-Store-Domain header wins; otherwise the Host header is used with any
// port stripped. Domains are compared lowercased.
func ResolveDomain(c *gin.Context) (string, error) {
	if header := c.GetHeader("X-Store-Domain"); header != "" {
		return strings.ToLower(strings.TrimSpace(header)), nil
	}
	host := c.Request.Host
	if host == "" {
		return "", apperrors.ErrMissingStoreDomain
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host), nil
}

// Resolver maps request domains to stores.
type Resolver struct {
	stores repository.StoreRepositoryInterface
}

// NewResolver creates a new Resolver
func NewResolver(stores repository.StoreRepositoryInterface) *Resolver {
	return &Resolver{stores: stores}
}

// Resolve looks a store up by its full domain, then falls back to matching
// the leftmost label against store subdomains (so "acme.example.com" finds
// the store whose subdomain is "acme").
func (r *Resolver) Resolve(domain string) (*models.Store, error) {
	store, err := r.stores.GetByDomain(domain)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if idx := strings.Index(domain, "."); idx > 0 {
		store, err = r.stores.GetBySubdomain(domain[:idx])
		if err == nil {
			return store, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, apperrors.ErrStoreNotFound
}

// Gate rejects requests to stores that must not serve traffic. Checks run
// in order and the first failure wins: inactive, then suspended, then
// lapsed subscription.
func Gate(store *models.Store, now time.Time) error {
	if !store.IsActive {
		return apperrors.ErrStoreInactive
	}
	if store.IsSuspended {
		return apperrors.NewSuspendedStoreError(store.SuspensionReason)
	}
	if store.SubscriptionExpired(now) {
		return apperrors.ErrSubscriptionLapsed
	}
	return nil
}
