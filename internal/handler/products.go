package handler

import (
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/utils"
	"github.com/google/uuid"
)

// ListProducts is public.
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Category"
// @Param        farmer    query  string  false  "Farmer id"
// @Param        search    query  string  false  "Matches name and description"
// @Param        lat       query  number  false  "Latitude, requires lng"
// @Param        lng       query  number  false  "Longitude, requires lat"
// @Param        radius    query  number  false  "Search radius in km, default 50"
// @Param        page      query  int     false  "Page, from 1"
// @Param        limit     query  int     false  "Page size, at most 100"
// @Success      200  {object}  utils.Response{data=ProductPage}
// @Failure      400  {object}  utils.Response
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entities.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	var details []utils.FieldDetail
	if raw := q.Get("farmer"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			details = append(details, utils.FieldDetail{Field: "farmer", Message: "must be a valid id"})
		}
		filter.FarmerID = id
	}

	lat, latSet, details := queryFloat(q.Get("lat"), "lat", details)
	lng, lngSet, details := queryFloat(q.Get("lng"), "lng", details)
	radius, _, details := queryFloat(q.Get("radius"), "radius", details)
	switch {
	case latSet && lngSet:
		filter.Near = &entities.GeoPoint{Latitude: lat, Longitude: lng}
		filter.RadiusKm = radius
	case latSet || lngSet:
		details = append(details, utils.FieldDetail{Field: "lat", Message: "lat and lng must be given together"})
	}
	if radius < 0 {
		details = append(details, utils.FieldDetail{Field: "radius", Message: "must be positive"})
	}

	filter.Page, details = queryInt(q, "page", details)
	filter.Limit, details = queryInt(q, "limit", details)
	if len(details) > 0 {
		utils.WriteErrorDetails(w, "validation failed", details, http.StatusBadRequest)
		return
	}

	page, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to list products")
		return
	}

	utils.WriteData(w, ProductPageEntityToJSON(page), http.StatusOK)
}

// GetProduct is public.
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  utils.Response{data=Product}
// @Failure      400  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Router       /products/{id} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to get product")
		return
	}

	utils.WriteData(w, ProductEntityToJSON(product), http.StatusOK)
}

// CreateProduct lists a new product for the calling farmer.
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  CreateProductRequest  true  "Product"
// @Success      201  {object}  utils.Response{data=Product}
// @Failure      400  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Router       /products [post]
func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), callerFrom(r), CreateProductJSONToEntity(req))
	if err != nil {
		h.writeServiceError(w, r, err, "failed to create product")
		return
	}

	utils.WriteData(w, ProductEntityToJSON(product), http.StatusCreated)
}

// UpdateProduct applies a partial update. Omitted fields are kept.
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                true  "Product id"
// @Param        request  body  UpdateProductRequest  true  "Fields to change"
// @Success      200  {object}  utils.Response{data=Product}
// @Failure      400  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Failure      409  {object}  utils.Response
// @Router       /products/{id} [put]
func (h *HTTPHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}
	var req UpdateProductRequest
	if !h.decodeAndValidate(w, r, &req, false) {
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), callerFrom(r), id, UpdateProductJSONToEntity(req))
	if err != nil {
		h.writeServiceError(w, r, err, "failed to update product")
		return
	}

	utils.WriteData(w, ProductEntityToJSON(product), http.StatusOK)
}

// DeleteProduct removes a listing. Existing orders keep their snapshots.
// @Summary      Delete product
// @Tags         products
// @Security     BearerAuth
// @Param        id   path  string  true  "Product id"
// @Success      200  {object}  utils.Response
// @Failure      403  {object}  utils.Response
// @Failure      404  {object}  utils.Response
// @Router       /products/{id} [delete]
func (h *HTTPHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeServiceError(w, r, err, "")
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), callerFrom(r), id); err != nil {
		h.writeServiceError(w, r, err, "failed to delete product")
		return
	}

	utils.WriteData(w, map[string]string{"message": "product deleted"}, http.StatusOK)
}

func queryFloat(raw, name string, details []utils.FieldDetail) (float64, bool, []utils.FieldDetail) {
	if raw == "" {
		return 0, false, details
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, append(details, utils.FieldDetail{Field: name, Message: "must be a number"})
	}
	return f, true, details
}
