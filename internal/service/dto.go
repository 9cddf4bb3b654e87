package service

import (
	"time"

	"dinehall/internal/domain"
)

type MenuItemDTO struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Category     string    `json:"category"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type OrderLine struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID  int         `json:"user_id"`
	TableID int         `json:"table_id"`
	Items   []OrderLine `json:"items"`
}

type OrderDetailDTO struct {
	MenuItemID int     `json:"menu_item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	LineTotal  float64 `json:"line_total"`
}

type OrderDTO struct {
	ID          int              `json:"id"`
	UserID      int              `json:"user_id"`
	TableID     int              `json:"table_id"`
	Status      string           `json:"status"`
	TotalAmount float64          `json:"total_amount"`
	CreatedAt   time.Time        `json:"created_at"`
	Items       []OrderDetailDTO `json:"items"`
}

type PaymentDetailInput struct {
	Method          string  `json:"method"`
	Amount          float64 `json:"amount"`
	TransactionCode string  `json:"transaction_code,omitempty"`
	Provider        string  `json:"provider,omitempty"`
	ExtraInfo       string  `json:"extra_info,omitempty"`
}

type CreatePaymentRequest struct {
	OrderID int                  `json:"order_id"`
	Method  string               `json:"method"`
	Amount  float64              `json:"amount"`
	Details []PaymentDetailInput `json:"details"`
}

type PaymentDetailDTO struct {
	ID              int     `json:"id"`
	Method          string  `json:"method"`
	Amount          float64 `json:"amount"`
	TransactionCode string  `json:"transaction_code,omitempty"`
	Provider        string  `json:"provider,omitempty"`
	ExtraInfo       string  `json:"extra_info,omitempty"`
}

type PaymentDTO struct {
	ID      int                `json:"id"`
	OrderID int                `json:"order_id"`
	Method  string             `json:"method"`
	Amount  float64            `json:"amount"`
	Status  string             `json:"status"`
	PaidAt  time.Time          `json:"paid_at"`
	Details []PaymentDetailDTO `json:"details"`
}

func menuItemToDTO(item *domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Category:     item.Category,
		Availability: item.Availability,
		CreatedAt:    item.CreatedAt,
	}
}

func menuItemToEntity(dto MenuItemDTO) *domain.MenuItem {
	availability := dto.Availability
	if availability == "" {
		availability = domain.MenuItemAvailable
	}
	return &domain.MenuItem{
		Name:         dto.Name,
		Description:  dto.Description,
		Price:        dto.Price,
		Category:     dto.Category,
		Availability: availability,
	}
}

func orderToDTO(order *domain.Order) OrderDTO {
	items := make([]OrderDetailDTO, 0, len(order.Details))
	for _, detail := range order.Details {
		items = append(items, OrderDetailDTO{
			MenuItemID: detail.MenuItemID,
			ItemName:   detail.ItemName,
			Quantity:   detail.Quantity,
			Price:      detail.Price,
			LineTotal:  detail.Price * float64(detail.Quantity),
		})
	}
	return OrderDTO{
		ID:          order.ID,
		UserID:      order.UserID,
		TableID:     order.TableID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}

func paymentToDTO(payment *domain.Payment) PaymentDTO {
	details := make([]PaymentDetailDTO, 0, len(payment.Details))
	for _, detail := range payment.Details {
		details = append(details, PaymentDetailDTO{
			ID:              detail.ID,
			Method:          detail.Method,
			Amount:          detail.Amount,
			TransactionCode: detail.TransactionCode,
			Provider:        detail.Provider,
			ExtraInfo:       detail.ExtraInfo,
		})
	}
	return PaymentDTO{
		ID:      payment.ID,
		OrderID: payment.OrderID,
		Method:  payment.Method,
		Amount:  payment.Amount,
		Status:  payment.Status,
		PaidAt:  payment.PaidAt,
		Details: details,
	}
}
