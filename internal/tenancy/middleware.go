package tenancy

import (
	"net/http"
	"time"

	"storefront-backend/internal/auth"
	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

const contextStoreKey = "currentStore"

// ResolveStore is a gin middleware that resolves the request's store from
// its domain, gates it, and stores it in the request context. All
// store-scoped routes sit behind it.
func ResolveStore(resolver *Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		domain, err := ResolveDomain(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store, err := resolver.Resolve(domain)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve store"})
			return
		}

		if err := Gate(store, time.Now()); err != nil {
			status := http.StatusForbidden
			if apperrors.IsPaymentRequired(err) {
				status = http.StatusPaymentRequired
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}

		c.Set(contextStoreKey, store)
		c.Next()
	}
}

// CurrentStore returns the store resolved for the request, if any.
func CurrentStore(c *gin.Context) (*models.Store, bool) {
	value, exists := c.Get(contextStoreKey)
	if !exists {
		return nil, false
	}
	store, ok := value.(*models.Store)
	return store, ok
}

// RequireRole is a gin middleware enforcing a minimum role in the current
// store. It must run after both RequireAuth and ResolveStore.
func RequireRole(access *Access, required models.StoreRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
			return
		}
		store, ok := CurrentStore(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingStoreDomain.Error()})
			return
		}
		if err := access.CheckAccess(user, store.ID, required); err != nil {
			if apperrors.IsForbidden(err) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to check store access"})
			return
		}
		c.Next()
	}
}
