package handlers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
	repo "github.com/rogerio-castellano/inventory-backend/internal/repo"
)

const productEntity = "Product"

func priceFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func nullPrice(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Article:       p.Article,
		Name:          p.Name,
		PurchasePrice: priceFloat(p.PurchasePrice),
		SellPrice:     priceFloat(p.SellPrice),
		IsActive:      p.IsActive,
		Category:      p.Category,
		Unit:          p.Unit,
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product through the create_product procedure. New products are always active.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Category or unit not found"
// @Failure 500 {object} DetailResponse "Procedure failure"
// @Router /products [post]
// @Router /products/create [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := productRepo.Create(r.Context(), models.Product{
		Article:       req.Article,
		Name:          req.Name,
		PurchasePrice: nullPrice(req.PurchasePrice),
		SellPrice:     nullPrice(req.SellPrice),
		IsActive:      true,
		CategoryID:    req.CategoryID,
		UnitID:        req.UnitID,
	})
	if err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}
	respond(w, http.StatusOK, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} DetailResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, total, err := productRepo.List(r.Context(), repo.ProductFilter{})
	if err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}
	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = toProductResponse(p)
	}
	respond(w, http.StatusOK, resp, http.Header{
		"X-Total-Count": []string{strconv.Itoa(total)},
	})
}

// FilterProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Produce json
// @Param name query string false "Filter by name (case insensitive substring)"
// @Param active query bool false "Filter by active flag"
// @Param category_id query int false "Filter by category"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} DetailResponse "Invalid query"
// @Failure 500 {object} DetailResponse
// @Router /products/search [get]
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repo.ProductFilter{
		Name:       q.Get("name"),
		Active:     parseBoolPtr(q.Get("active")),
		CategoryID: parseIntPtr(q.Get("category_id")),
		Offset:     parseIntPtr(q.Get("offset")),
		Limit:      parseIntPtr(q.Get("limit")),
	}

	if filter.Limit != nil && *filter.Limit <= 0 {
		writeError(w, http.StatusBadRequest, "limit must be greater than zero")
		return
	}
	if filter.Offset != nil && *filter.Offset < 0 {
		writeError(w, http.StatusBadRequest, "offset must be zero or positive")
		return
	}

	products, total, err := productRepo.List(r.Context(), filter)
	if err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}
	respond(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} DetailResponse "Invalid ID"
// @Failure 404 {object} DetailResponse "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}
	respond(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Only the fields present in the body are changed.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductPatchRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {object} DetailResponse "Not found"
// @Router /products/{id} [put]
// @Security BearerAuth
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ProductPatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := productRepo.Update(r.Context(), id, repo.ProductPatch{
		Article:       req.Article,
		Name:          req.Name,
		PurchasePrice: req.PurchasePrice,
		SellPrice:     req.SellPrice,
		IsActive:      req.IsActive,
		CategoryID:    req.CategoryID,
		UnitID:        req.UnitID,
	})
	if err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}
	respond(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} DetailResponse "Product deleted"
// @Failure 400 {object} DetailResponse "Invalid ID"
// @Failure 404 {object} DetailResponse "Not found"
// @Failure 409 {object} DetailResponse "Product is used by document lines"
// @Router /products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := productRepo.Delete(r.Context(), id); err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}
	writeDeleted(w, productEntity)
}

// GetProductQuantityHandler godoc
// @Summary Stock of a product in a storage zone
// @Description Never fails: any error yields quantity 0 and an error message.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Param zone_id query int true "Storage zone ID"
// @Success 200 {object} QuantityResponse
// @Router /products/{id}/quantity [get]
func GetProductQuantityHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respond(w, http.StatusOK, QuantityResponse{Error: err.Error()})
		return
	}
	zoneID, err := strconv.Atoi(r.URL.Query().Get("zone_id"))
	if err != nil || zoneID <= 0 {
		respond(w, http.StatusOK, QuantityResponse{Error: "invalid zone_id"})
		return
	}

	qty, err := productRepo.Quantity(r.Context(), id, zoneID)
	if err != nil {
		detail := err.Error()
		if redactErrors {
			detail = "quantity lookup failed"
		}
		respond(w, http.StatusOK, QuantityResponse{Error: detail})
		return
	}
	respond(w, http.StatusOK, QuantityResponse{Quantity: qty})
}
