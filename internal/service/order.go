package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dinehall/internal/domain"
)

// GuestAccountPolicy controls how walk-in customers get throwaway accounts.
// Injectable so tests can pin the generated credentials.
type GuestAccountPolicy struct {
	DefaultPassword string
	EmailTemplate   string
	DisplayName     string
}

func DefaultGuestPolicy() GuestAccountPolicy {
	return GuestAccountPolicy{
		DefaultPassword: "changeme123",
		EmailTemplate:   "guest-%d@dinehall.local",
		DisplayName:     "Walk-in guest",
	}
}

func (p GuestAccountPolicy) Email(seed int64) string {
	return fmt.Sprintf(p.EmailTemplate, seed)
}

// OrderService drives the order state machine: pending is initial, completed
// and cancelled are terminal, and every mutation replaces the detail list as
// a whole with freshly snapshotted prices.
type OrderService struct {
	repo      OrderRepository
	menu      MenuLookup
	users     UserDirectory
	publisher EventPublisher
	qrEncoder QRGenerator
	guests    GuestAccountPolicy
}

func NewOrderService(repo OrderRepository, menu MenuLookup, users UserDirectory, publisher EventPublisher, qr QRGenerator, guests GuestAccountPolicy) *OrderService {
	return &OrderService{
		repo:      repo,
		menu:      menu,
		users:     users,
		publisher: publisher,
		qrEncoder: qr,
		guests:    guests,
	}
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) Result[OrderDTO] {
	if len(req.Items) == 0 {
		return fail[OrderDTO](KindValidation, "order must contain at least one item")
	}
	if req.TableID <= 0 {
		return fail[OrderDTO](KindValidation, "table id is required")
	}

	userID := req.UserID
	if userID == 0 {
		guestID, err := s.users.CreateGuest(
			s.guests.Email(time.Now().UnixNano()),
			s.guests.DefaultPassword,
			s.guests.DisplayName,
		)
		if err != nil {
			return failErr[OrderDTO]("create guest account", err)
		}
		userID = guestID
	}

	details, total, err := s.buildDetails(ctx, req.Items)
	if err != nil {
		return failErr[OrderDTO]("create order", err)
	}

	order := &domain.Order{
		UserID:      userID,
		TableID:     req.TableID,
		Status:      domain.OrderPending,
		TotalAmount: total,
		Details:     details,
	}
	if err := s.repo.Create(order); err != nil {
		return failErr[OrderDTO]("create order", err)
	}

	if s.qrEncoder != nil {
		if qr, qrErr := s.qrEncoder.Generate(order.ID); qrErr == nil {
			if saveErr := s.repo.SaveQRCode(order.ID, qr); saveErr != nil {
				log.Printf("[dinehall] failed to store QR code for order %d: %v", order.ID, saveErr)
			}
		} else {
			log.Printf("[dinehall] failed to generate QR code for order %d: %v", order.ID, qrErr)
		}
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventOrderCreated,
		OrderID:   order.ID,
		Status:    order.Status,
		Amount:    order.TotalAmount,
		Timestamp: time.Now(),
	})

	return ok(orderToDTO(order))
}

func (s *OrderService) Update(ctx context.Context, orderID int, items []OrderLine) Result[OrderDTO] {
	if len(items) == 0 {
		return fail[OrderDTO](KindValidation, "order must contain at least one item")
	}

	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return failErr[OrderDTO]("update order", err)
	}
	if order.Status != domain.OrderPending {
		return fail[OrderDTO](KindBusinessRule, "only pending orders can be updated")
	}

	details, total, err := s.buildDetails(ctx, items)
	if err != nil {
		return failErr[OrderDTO]("update order", err)
	}

	if err := s.repo.ReplaceDetails(orderID, details, total); err != nil {
		return failErr[OrderDTO]("update order", err)
	}

	order.Details = details
	order.TotalAmount = total
	return ok(orderToDTO(order))
}

func (s *OrderService) Cancel(ctx context.Context, orderID, requestingUserID int, customerRequest bool) Result[OrderDTO] {
	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return failErr[OrderDTO]("cancel order", err)
	}
	if customerRequest && order.UserID != requestingUserID {
		return fail[OrderDTO](KindUnauthorized, "you can only cancel your own orders")
	}
	if order.Status != domain.OrderPending {
		return fail[OrderDTO](KindBusinessRule, "only pending orders can be cancelled")
	}

	if _, err := s.repo.UpdateStatus(orderID, domain.OrderCancelled); err != nil {
		return failErr[OrderDTO]("cancel order", err)
	}
	order.Status = domain.OrderCancelled

	s.publish(ctx, domain.Event{
		Type:      domain.EventOrderCancelled,
		OrderID:   orderID,
		Status:    domain.OrderCancelled,
		Timestamp: time.Now(),
	})

	return ok(orderToDTO(order))
}

func (s *OrderService) Get(orderID int, scope domain.AccessScope) Result[OrderDTO] {
	order, err := s.loadScoped(orderID, scope)
	if err != nil {
		return failErr[OrderDTO]("get order", err)
	}
	return ok(orderToDTO(order))
}

func (s *OrderService) Status(orderID int, scope domain.AccessScope) Result[string] {
	order, err := s.loadScoped(orderID, scope)
	if err != nil {
		return failErr[string]("get order status", err)
	}
	return ok(order.Status)
}

// loadScoped folds the ownership-masking rule into one place: an order the
// scope does not allow reads exactly like a missing order, down to the same
// message, so the response never reveals whether the id exists.
func (s *OrderService) loadScoped(orderID int, scope domain.AccessScope) (*domain.Order, error) {
	order, err := s.repo.GetByID(orderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundf("order with id %d not found", orderID)
	}
	if err != nil {
		return nil, err
	}
	if !scope.Allows(order.UserID) {
		return nil, NotFoundf("order with id %d not found", orderID)
	}
	return order, nil
}

func (s *OrderService) List() Result[[]OrderDTO] {
	orders, err := s.repo.GetAll()
	if err != nil {
		return failErr[[]OrderDTO]("list orders", err)
	}
	return ok(s.toDTOs(orders))
}

func (s *OrderService) ListPaginated(p domain.PageParams) Result[domain.Page[OrderDTO]] {
	page, err := s.repo.GetPaginated(p)
	if err != nil {
		return failErr[domain.Page[OrderDTO]]("list orders paginated", err)
	}
	return ok(domain.Page[OrderDTO]{
		Items:        s.toDTOs(page.Items),
		PageNumber:   page.PageNumber,
		PageSize:     page.PageSize,
		TotalRecords: page.TotalRecords,
	})
}

func (s *OrderService) Search(keyword string) Result[[]OrderDTO] {
	if strings.TrimSpace(keyword) == "" {
		return fail[[]OrderDTO](KindValidation, "search keyword is required")
	}
	orders, err := s.repo.Search(keyword)
	if err != nil {
		return failErr[[]OrderDTO]("search orders", err)
	}
	return ok(s.toDTOs(orders))
}

// UpdateStatus is the operator-facing transition: any non-terminal order may
// move to any status, including skipping in_progress.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) Result[OrderDTO] {
	if !domain.ValidOrderStatus(status) {
		return fail[OrderDTO](KindValidation, fmt.Sprintf("unknown order status %q", status))
	}

	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return failErr[OrderDTO]("update order status", err)
	}
	if domain.OrderTerminal(order.Status) {
		return fail[OrderDTO](KindBusinessRule, fmt.Sprintf("order %d is already %s", orderID, order.Status))
	}

	if _, err := s.repo.UpdateStatus(orderID, status); err != nil {
		return failErr[OrderDTO]("update order status", err)
	}
	order.Status = status

	s.publish(ctx, domain.Event{
		Type:      domain.EventOrderStatusChanged,
		OrderID:   orderID,
		Status:    status,
		Timestamp: time.Now(),
	})

	return ok(orderToDTO(order))
}

func (s *OrderService) QRCode(orderID int, scope domain.AccessScope) ([]byte, error) {
	if _, err := s.loadScoped(orderID, scope); err != nil {
		return nil, err
	}

	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, genErr := s.qrEncoder.Generate(orderID)
		if genErr != nil {
			return nil, genErr
		}
		if saveErr := s.repo.SaveQRCode(orderID, regenerated); saveErr != nil {
			log.Printf("[dinehall] failed to cache regenerated QR code: %v", saveErr)
		}
		return regenerated, nil
	}
	return qr, nil
}

// buildDetails validates every requested line against the catalog and
// snapshots the current price. Any bad line aborts the whole build, so no
// partial order ever reaches the store.
func (s *OrderService) buildDetails(ctx context.Context, items []OrderLine) ([]domain.OrderDetail, float64, error) {
	details := make([]domain.OrderDetail, 0, len(items))
	var total float64
	for _, line := range items {
		if line.Quantity < 1 {
			return nil, 0, Invalidf("quantity for menu item %d must be at least 1", line.MenuItemID)
		}

		item, err := s.menu.Lookup(ctx, line.MenuItemID)
		if errors.Is(err, ErrMenuItemNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, 0, NotFoundf("menu item with id %d not found", line.MenuItemID)
		}
		if err != nil {
			return nil, 0, err
		}
		if item.Availability != domain.MenuItemAvailable {
			return nil, 0, RuleViolationf("menu item %q is out of stock", item.Name)
		}

		details = append(details, domain.OrderDetail{
			MenuItemID: item.ID,
			ItemName:   item.Name,
			Quantity:   line.Quantity,
			Price:      item.Price,
		})
		total += item.Price * float64(line.Quantity)
	}
	return details, total, nil
}

func (s *OrderService) toDTOs(orders []domain.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, orderToDTO(&orders[i]))
	}
	return dtos
}

func (s *OrderService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[dinehall] failed to publish %s event: %v", event.Type, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
