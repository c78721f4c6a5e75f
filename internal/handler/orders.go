package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/utils"
)

// CreateOrder places an order for the authenticated buyer.
// @Summary      Place an order
// @Description  Reserves stock and creates the order in one transaction. Prices come from the catalog.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header  string              false  "Retries with the same key return the same order"
// @Param        request          body    CreateOrderRequest  true   "Order"
// @Success      201  {object}  utils.Response{data=Order}
// @Failure      400  {object}  utils.Response "Validation, stock or id error"
// @Failure      401  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response "Product not found"
// @Failure      409  {object}  utils.Response "Concurrent modification, retry"
// @Failure      500  {object}  utils.Response
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	key := r.Header.Get(idempotencyHeader)
	if len(key) > 128 {
		utils.WriteErrorDetails(w, "validation failed", []utils.FieldDetail{{Field: idempotencyHeader, Message: "must be at most 128 characters"}}, http.StatusBadRequest)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), callerFrom(r), CreateOrderJSONToEntity(req), key)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create order")
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns one order visible to the caller.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  utils.Response{data=Order}
// @Failure      400  {object}  utils.Response "Malformed id"
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), callerFrom(r), id)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get order")
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListAllOrders is the admin view over every order.
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status         query  string  false  "processing|shipped|delivered|cancelled"
// @Param        paymentMethod  query  string  false  "cash|credit_card|mobile_money|paypal"
// @Param        page           query  int     false  "Page, from 1"
// @Param        limit          query  int     false  "Page size, at most 100"
// @Param        sortBy         query  string  false  "createdAt|updatedAt|total|status"
// @Param        sortOrder      query  string  false  "asc|desc"
// @Success      200  {object}  utils.Response{data=OrderPage}
// @Failure      400  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Router       /orders [get]
func (h *HTTPHandler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, entities.ScopeAll)
}

// ListMyOrders lists the buyer's own orders.
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Order status"
// @Param        page    query  int     false  "Page, from 1"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  utils.Response{data=OrderPage}
// @Router       /orders/my-orders [get]
func (h *HTTPHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, entities.ScopeBuyer)
}

// ListReceivedOrders lists orders containing the farmer's products.
// @Summary      List received orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Order status"
// @Param        page    query  int     false  "Page, from 1"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  utils.Response{data=OrderPage}
// @Router       /orders/received [get]
func (h *HTTPHandler) ListReceivedOrders(w http.ResponseWriter, r *http.Request) {
	h.listOrders(w, r, entities.ScopeFarmer)
}

type orderQuery struct {
	Status        string `json:"status" validate:"omitempty,oneof=processing shipped delivered cancelled"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=cash credit_card mobile_money paypal"`
	SortBy        string `json:"sortBy" validate:"omitempty,oneof=createdAt updatedAt total status"`
	SortOrder     string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
	Page          int    `json:"page" validate:"gte=0"`
	Limit         int    `json:"limit" validate:"gte=0,lte=100"`
}

func (h *HTTPHandler) listOrders(w http.ResponseWriter, r *http.Request, scope entities.OrderScope) {
	q := r.URL.Query()
	query := orderQuery{
		Status:        q.Get("status"),
		PaymentMethod: q.Get("paymentMethod"),
		SortBy:        q.Get("sortBy"),
		SortOrder:     q.Get("sortOrder"),
	}

	var details []utils.FieldDetail
	query.Page, details = queryInt(q, "page", details)
	query.Limit, details = queryInt(q, "limit", details)
	if len(details) > 0 {
		utils.WriteErrorDetails(w, "validation failed", details, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(query); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	filter := entities.OrderFilter{
		Status:        entities.OrderStatus(query.Status),
		PaymentMethod: entities.PaymentMethod(query.PaymentMethod),
		SortBy:        entities.SortField(query.SortBy),
		Descending:    query.SortOrder != "asc",
		Page:          query.Page,
		Limit:         query.Limit,
	}

	page, err := h.orders.ListOrders(r.Context(), callerFrom(r), scope, filter)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list orders")
		return
	}

	utils.WriteData(w, OrderPageEntityToJSON(page), http.StatusOK)
}

// UpdateStatus moves an order along processing -> shipped -> delivered.
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string               true  "Order id"
// @Param        request  body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  utils.Response{data=Order}
// @Failure      400  {object}  utils.Response "Invalid transition"
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Failure      409  {object}  utils.Response
// @Router       /orders/{id}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	var req UpdateStatusRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), callerFrom(r), id, entities.OrderStatus(req.Status), req.Notes)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update order status")
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder cancels the order and restores stock.
// @Summary      Cancel order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string              true   "Order id"
// @Param        request  body  CancelOrderRequest  false  "Reason"
// @Success      200  {object}  utils.Response{data=Order}
// @Failure      400  {object}  utils.Response "Order can no longer be cancelled"
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Failure      409  {object}  utils.Response
// @Router       /orders/{id}/cancel [patch]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	var req CancelOrderRequest
	if !h.decodeAndValidate(w, r, &req, true) {
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), callerFrom(r), id, req.Reason)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to cancel order")
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdatePayment records a payment state change.
// @Summary      Update payment status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                true  "Order id"
// @Param        request  body  UpdatePaymentRequest  true  "Payment status"
// @Success      200  {object}  utils.Response{data=Order}
// @Failure      400  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Router       /orders/{id}/payment [patch]
func (h *HTTPHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	var req UpdatePaymentRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	order, err := h.orders.UpdatePaymentStatus(r.Context(), callerFrom(r), id, entities.PaymentStatus(req.PaymentStatus), req.TransactionID)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update payment status")
		return
	}

	utils.WriteData(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder removes an order. Admin only.
// @Summary      Delete order
// @Tags         orders
// @Security     BearerAuth
// @Param        id   path  string  true  "Order id"
// @Success      200  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Router       /orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), callerFrom(r), id); err != nil {
		h.writeServiceError(w, r, err, "failed to delete order")
		return
	}

	utils.WriteData(w, map[string]string{"message": "order deleted"}, http.StatusOK)
}

func queryInt(q url.Values, name string, details []utils.FieldDetail) (int, []utils.FieldDetail) {
	raw := q.Get(name)
	if raw == "" {
		return 0, details
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, append(details, utils.FieldDetail{Field: name, Message: "must be an integer"})
	}
	return n, details
}
