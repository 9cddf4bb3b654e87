package domain

import "time"

const (
	MenuItemAvailable  = "available"
	MenuItemOutOfStock = "out_of_stock"
)

const (
	OrderPending    = "pending"
	OrderInProgress = "in_progress"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

type MenuItem struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
}

type Order struct {
	ID          int           `json:"id"`
	UserID      int           `json:"user_id"`
	TableID     int           `json:"table_id"`
	Status      string        `json:"status"`
	TotalAmount float64       `json:"total_amount"`
	CreatedAt   time.Time     `json:"created_at"`
	Details     []OrderDetail `json:"details"`
}

// OrderDetail carries the unit price snapshotted at order creation or update
// time; later menu price changes never touch it.
type OrderDetail struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MenuItemID int     `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Payment struct {
	ID      int             `json:"id"`
	OrderID int             `json:"order_id"`
	Method  string          `json:"method"`
	Amount  float64         `json:"amount"`
	Status  string          `json:"status"`
	PaidAt  time.Time       `json:"paid_at"`
	Details []PaymentDetail `json:"details"`
}

type PaymentDetail struct {
	ID              int     `json:"id"`
	PaymentID       int     `json:"payment_id"`
	Method          string  `json:"method"`
	Amount          float64 `json:"amount"`
	TransactionCode string  `json:"transaction_code,omitempty"`
	Provider        string  `json:"provider,omitempty"`
	ExtraInfo       string  `json:"extra_info,omitempty"`
}

type User struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentStatistics is a point-in-time snapshot, recomputed on every call.
type PaymentStatistics struct {
	ByStatus    map[string]StatusBucket `json:"by_status"`
	GeneratedAt time.Time               `json:"generated_at"`
}

type StatusBucket struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type Event struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id,omitempty"`
	PaymentID int       `json:"payment_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types published to the events topic.
const (
	EventOrderCreated       = "order_created"
	EventOrderCancelled     = "order_cancelled"
	EventOrderStatusChanged = "order_status_changed"
	EventPaymentCreated     = "payment_created"
	EventPaymentCompleted   = "payment_completed"
	EventPaymentStatus      = "payment_status_changed"
)

// OrderTerminal reports whether no further transition is permitted.
func OrderTerminal(status string) bool {
	return status == OrderCompleted || status == OrderCancelled
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}
