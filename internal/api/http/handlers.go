package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"dinehall/internal/domain"
	"dinehall/internal/service"
)

type Handler struct {
	Menu     service.MenuServiceInterface
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
}

func NewHandler(menu service.MenuServiceInterface, orders service.OrderServiceInterface, payments service.PaymentServiceInterface) *Handler {
	return &Handler{Menu: menu, Orders: orders, Payments: payments}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu/search", h.searchMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/search", h.searchOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/cancel", h.cancelOrder).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/payments", h.createPayment).Methods("POST")
	r.HandleFunc("/api/payments", h.listPayments).Methods("GET")
	r.HandleFunc("/api/payments/revenue/total", h.totalRevenue).Methods("GET")
	r.HandleFunc("/api/payments/statistics", h.paymentStatistics).Methods("GET")
	r.HandleFunc("/api/payments/{id}", h.getPayment).Methods("GET")
	r.HandleFunc("/api/payments/{id}", h.deletePayment).Methods("DELETE")
	r.HandleFunc("/api/payments/{id}/status", h.updatePaymentStatus).Methods("PUT")
	r.HandleFunc("/api/payments/{id}/verify", h.verifyPayment).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "dinehall",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// writeResult maps the envelope's error kind to an HTTP status and encodes
// the envelope as-is.
func writeResult[T any](w http.ResponseWriter, res service.Result[T], successCode int) {
	code := successCode
	if !res.Success {
		switch res.Kind {
		case service.KindNotFound:
			code = http.StatusNotFound
		case service.KindValidation, service.KindBusinessRule:
			code = http.StatusBadRequest
		case service.KindUnauthorized:
			code = http.StatusForbidden
		default:
			code = http.StatusInternalServerError
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(res)
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func pageParams(r *http.Request) domain.PageParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))
	descending, _ := strconv.ParseBool(q.Get("desc"))
	return domain.PageParams{
		Page:       page,
		Size:       size,
		SortField:  q.Get("sort"),
		Descending: descending,
	}
}

func paginated(r *http.Request) bool {
	return r.URL.Query().Get("page") != "" || r.URL.Query().Get("size") != ""
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	var dto service.MenuItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.Menu.Create(dto), http.StatusCreated)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	if paginated(r) {
		writeResult(w, h.Menu.GetPaginated(pageParams(r)), http.StatusOK)
		return
	}
	writeResult(w, h.Menu.GetAll(), http.StatusOK)
}

func (h *Handler) searchMenu(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if paginated(r) {
		writeResult(w, h.Menu.SearchPaginated(keyword, pageParams(r)), http.StatusOK)
		return
	}
	writeResult(w, h.Menu.Search(keyword), http.StatusOK)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.Menu.GetByID(pathID(r)), http.StatusOK)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	var dto service.MenuItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.Menu.Update(r.Context(), pathID(r), dto), http.StatusOK)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	writeResult(w, h.Menu.Delete(r.Context(), pathID(r)), http.StatusOK)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	id, allowed := requireRole(w, r)
	if !allowed {
		return
	}
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Customers always order as themselves; staff may order on behalf of a
	// user or leave it zero for a walk-in guest.
	if id.Role == RoleCustomer || id.Role == "" {
		req.UserID = id.UserID
	}
	writeResult(w, h.Orders.Create(r.Context(), req), http.StatusCreated)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	if paginated(r) {
		writeResult(w, h.Orders.ListPaginated(pageParams(r)), http.StatusOK)
		return
	}
	writeResult(w, h.Orders.List(), http.StatusOK)
}

func (h *Handler) searchOrders(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	writeResult(w, h.Orders.Search(r.URL.Query().Get("keyword")), http.StatusOK)
}

func (h *Handler) orderScope(id Identity) domain.AccessScope {
	if id.HasRole(RoleStaff, RoleAdmin) {
		return domain.Unrestricted()
	}
	return domain.OwnedBy(id.UserID)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, allowed := requireRole(w, r)
	if !allowed {
		return
	}
	writeResult(w, h.Orders.Get(pathID(r), h.orderScope(id)), http.StatusOK)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	var req struct {
		Items []service.OrderLine `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.Orders.Update(r.Context(), pathID(r), req.Items), http.StatusOK)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, allowed := requireRole(w, r)
	if !allowed {
		return
	}
	customerRequest := !id.HasRole(RoleStaff, RoleAdmin)
	writeResult(w, h.Orders.Cancel(r.Context(), pathID(r), id.UserID, customerRequest), http.StatusOK)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, allowed := requireRole(w, r)
	if !allowed {
		return
	}
	writeResult(w, h.Orders.Status(pathID(r), h.orderScope(id)), http.StatusOK)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.Orders.UpdateStatus(r.Context(), pathID(r), req.Status), http.StatusOK)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, allowed := requireRole(w, r)
	if !allowed {
		return
	}
	qr, err := h.Orders.QRCode(pathID(r), h.orderScope(id))
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r); !allowed {
		return
	}
	var req service.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.Payments.Create(r.Context(), req), http.StatusCreated)
}

// listPayments serves the reconciliation queries through query parameters:
// order_id, status, code, from/to (RFC 3339 dates, inclusive).
func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleStaff, RoleAdmin); !allowed {
		return
	}
	q := r.URL.Query()

	if raw := q.Get("order_id"); raw != "" {
		orderID, _ := strconv.Atoi(raw)
		writeResult(w, h.Payments.ListByOrder(orderID), http.StatusOK)
		return
	}
	if status := q.Get("status"); status != "" {
		writeResult(w, h.Payments.ListByStatus(status), http.StatusOK)
		return
	}
	if code := q.Get("code"); code != "" {
		writeResult(w, h.Payments.SearchByCode(code), http.StatusOK)
		return
	}
	if q.Get("from") != "" || q.Get("to") != "" {
		from, err := time.Parse(time.RFC3339, q.Get("from"))
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		to, err := time.Parse(time.RFC3339, q.Get("to"))
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		writeResult(w, h.Payments.ListByDateRange(from, to), http.StatusOK)
		return
	}

	http.Error(w, "one of order_id, status, code or from/to is required", http.StatusBadRequest)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r); !allowed {
		return
	}
	writeResult(w, h.Payments.Get(pathID(r)), http.StatusOK)
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleAdmin); !allowed {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeResult(w, h.Payments.UpdateStatus(r.Context(), pathID(r), req.Status), http.StatusOK)
}

// verifyPayment is webhook-facing: no auth, provider gateways call it with
// the transaction code they settled.
func (h *Handler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TransactionCode string `json:"transaction_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	verified, err := h.Payments.Verify(r.Context(), pathID(r), req.TransactionCode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !verified {
		w.WriteHeader(http.StatusBadRequest)
	}
	json.NewEncoder(w).Encode(map[string]bool{"verified": verified})
}

func (h *Handler) totalRevenue(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleAdmin); !allowed {
		return
	}
	writeResult(w, h.Payments.TotalRevenue(), http.StatusOK)
}

func (h *Handler) paymentStatistics(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleAdmin); !allowed {
		return
	}
	writeResult(w, h.Payments.Statistics(), http.StatusOK)
}

func (h *Handler) deletePayment(w http.ResponseWriter, r *http.Request) {
	if _, allowed := requireRole(w, r, RoleAdmin); !allowed {
		return
	}
	writeResult(w, h.Payments.Delete(pathID(r)), http.StatusOK)
}
