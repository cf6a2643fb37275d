package tenancy

import (
	"time"

	"storefront-backend/internal/database/models"
	apperrors "storefront-backend/internal/errors"
	"storefront-backend/internal/repository"
)

// LimitKind names a plan ceiling that can be checked before a write.
type LimitKind string

const (
	LimitProducts LimitKind = "products"
	LimitOrders   LimitKind = "orders"
)

// Limits enforces per-store plan ceilings. A nil ceiling on the store
// means unlimited.
type Limits struct {
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepositoryInterface
	now      func() time.Time
}

// NewLimits creates a new Limits checker
func NewLimits(products repository.ProductRepositoryInterface, orders repository.OrderRepositoryInterface) *Limits {
	return &Limits{products: products, orders: orders, now: time.Now}
}

// Allow reports whether the store may create one more entity of the given
// kind. Product counts are live totals; order counts reset on the first of
// each calendar month.
func (l *Limits) Allow(store *models.Store, kind LimitKind) error {
	switch kind {
	case LimitProducts:
		if store.MaxProducts == nil {
			return nil
		}
		count, err := l.products.CountByStore(store.ID)
		if err != nil {
			return err
		}
		if count >= int64(*store.MaxProducts) {
			return apperrors.ErrProductLimitReached
		}
	case LimitOrders:
		if store.MaxOrdersPerMonth == nil {
			return nil
		}
		count, err := l.orders.CountByStoreSince(store.ID, monthStart(l.now()))
		if err != nil {
			return err
		}
		if count >= int64(*store.MaxOrdersPerMonth) {
			return apperrors.ErrOrderLimitReached
		}
	}
	return nil
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
