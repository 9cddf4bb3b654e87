package service

import (
	"context"
	"time"

	"dinehall/internal/domain"
)

// Repository is the uniform persistence contract every entity type
// implements. Page and size are clamped by the store, never rejected.
// Update reports false when the id is absent; Delete reports false when
// nothing was removed. Neither is an error.
type Repository[T any] interface {
	GetByID(id int) (*T, error)
	GetAll() ([]T, error)
	GetPaginated(p domain.PageParams) (domain.Page[T], error)
	Search(keyword string) ([]T, error)
	SearchPaginated(keyword string, p domain.PageParams) (domain.Page[T], error)
	Create(entity *T) error
	Update(entity *T) (bool, error)
	Delete(id int) (bool, error)
	Exists(id int) (bool, error)
	Count() (int, error)
}

type MenuRepository interface {
	Repository[domain.MenuItem]
}

type OrderRepository interface {
	Repository[domain.Order]
	UpdateStatus(id int, status string) (bool, error)
	ReplaceDetails(orderID int, details []domain.OrderDetail, total float64) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type PaymentRepository interface {
	Repository[domain.Payment]
	UpdateStatus(id int, status string) (bool, error)
	ListByOrder(orderID int) ([]domain.Payment, error)
	ListByStatus(status string) ([]domain.Payment, error)
	ListByDateRange(from, to time.Time) ([]domain.Payment, error)
	TotalRevenue() (float64, error)
	StatusTotals() (map[string]domain.StatusBucket, error)
}

// UserDirectory covers the slice of account management the order flow needs:
// minting throwaway accounts for walk-in customers. Credential handling
// lives elsewhere.
type UserDirectory interface {
	CreateGuest(email, password, displayName string) (int, error)
}

// MenuLookup is the read-only catalog collaborator consumed by order
// creation and update.
type MenuLookup interface {
	Lookup(ctx context.Context, id int) (*domain.MenuItem, error)
}

// OrderChecker is the narrow view of order persistence the payment engine
// needs: existence only.
type OrderChecker interface {
	Exists(id int) (bool, error)
}

type MenuCache interface {
	ItemKey(id int) string
	Get(ctx context.Context, key string) (*domain.MenuItem, error)
	Set(ctx context.Context, key string, item *domain.MenuItem) error
	Invalidate(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type MenuServiceInterface interface {
	GetByID(id int) Result[MenuItemDTO]
	GetAll() Result[[]MenuItemDTO]
	GetPaginated(p domain.PageParams) Result[domain.Page[MenuItemDTO]]
	Search(keyword string) Result[[]MenuItemDTO]
	SearchPaginated(keyword string, p domain.PageParams) Result[domain.Page[MenuItemDTO]]
	Create(dto MenuItemDTO) Result[MenuItemDTO]
	Update(ctx context.Context, id int, dto MenuItemDTO) Result[MenuItemDTO]
	Delete(ctx context.Context, id int) Result[bool]
	Lookup(ctx context.Context, id int) (*domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req CreateOrderRequest) Result[OrderDTO]
	Update(ctx context.Context, orderID int, items []OrderLine) Result[OrderDTO]
	Cancel(ctx context.Context, orderID, requestingUserID int, customerRequest bool) Result[OrderDTO]
	Get(orderID int, scope domain.AccessScope) Result[OrderDTO]
	Status(orderID int, scope domain.AccessScope) Result[string]
	List() Result[[]OrderDTO]
	ListPaginated(p domain.PageParams) Result[domain.Page[OrderDTO]]
	Search(keyword string) Result[[]OrderDTO]
	UpdateStatus(ctx context.Context, orderID int, status string) Result[OrderDTO]
	QRCode(orderID int, scope domain.AccessScope) ([]byte, error)
}

type PaymentServiceInterface interface {
	Create(ctx context.Context, req CreatePaymentRequest) Result[PaymentDTO]
	Get(id int) Result[PaymentDTO]
	UpdateStatus(ctx context.Context, id int, status string) Result[PaymentDTO]
	Verify(ctx context.Context, id int, transactionCode string) (bool, error)
	ListByOrder(orderID int) Result[[]PaymentDTO]
	ListByStatus(status string) Result[[]PaymentDTO]
	SearchByCode(code string) Result[[]PaymentDTO]
	ListByDateRange(from, to time.Time) Result[[]PaymentDTO]
	TotalRevenue() Result[float64]
	Statistics() Result[domain.PaymentStatistics]
	Delete(id int) Result[bool]
}
