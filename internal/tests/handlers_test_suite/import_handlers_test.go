package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rogerio-castellano/inventory-backend/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-backend/internal/models"
	"github.com/rogerio-castellano/inventory-backend/internal/repo"
)

// brokenProducts fails every write with a procedure error.
type brokenProducts struct {
	repo.ProductRepository
}

var errProcedure = &repo.ProcedureError{
	Procedure: "create_product",
	Err:       errors.New(`relation "products" is locked by pid 4242`),
}

func (brokenProducts) Create(context.Context, models.Product) (models.Product, error) {
	return models.Product{}, errProcedure
}

func (brokenProducts) Update(context.Context, int, repo.ProductPatch) (models.Product, error) {
	return models.Product{}, errProcedure
}

func TestImportProductsHandler(t *testing.T) {
	t.Run("File with unique valid products", func(t *testing.T) {
		s := newServer(t)
		csvData := `article,name,purchase_price,sell_price
1001,Mouse,20.00,25.99
1002,Keyboard,30,45.00`

		w := s.upload(t, "/products/import", "products.csv", []byte(csvData))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[handlers.ImportProductsResult](t, w)
		assert.Equal(t, 2, resp.ImportedProductsCount)
		assert.Empty(t, resp.Errors)
	})

	t.Run("File with one invalid product", func(t *testing.T) {
		s := newServer(t)
		csvData := `article,name,purchase_price,sell_price
1001,Mouse,20.00,25.99
abc,InvalidProduct,1,1
1002,Keyboard,30,45.00`

		w := s.upload(t, "/products/import", "products.csv", []byte(csvData))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[handlers.ImportProductsResult](t, w)
		assert.Equal(t, 2, resp.ImportedProductsCount)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "row 3", resp.Errors[0].Field)
		assert.Equal(t, "invalid article", resp.Errors[0].Description)
	})

	t.Run("Duplicated article in default mode (skip)", func(t *testing.T) {
		s := newServer(t)
		csvData := `article,name,sell_price
1001,Mouse,25.99
1002,Keyboard,45.00
1001,Mouse v2,19.00`

		w := s.upload(t, "/products/import", "products.csv", []byte(csvData))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[handlers.ImportProductsResult](t, w)
		assert.Equal(t, 2, resp.ImportedProductsCount)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "row 4", resp.Errors[0].Field)
		assert.Equal(t, "product with article 1001 already exists", resp.Errors[0].Description)

		w = s.do(t, http.MethodGet, "/products/1", nil, "")
		assert.Equal(t, "Mouse", decode[handlers.ProductResponse](t, w).Name)
	})

	t.Run("Duplicated article in update mode", func(t *testing.T) {
		s := newServer(t)
		s.createProduct(t, 1001, "Mouse")
		csvData := `article,name,sell_price
1001,Mouse v2,19.00`

		w := s.upload(t, "/products/import?mode=update", "products.csv", []byte(csvData))
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[handlers.ImportProductsResult](t, w)
		assert.Equal(t, 1, resp.ImportedProductsCount)
		assert.Empty(t, resp.Errors)

		w = s.do(t, http.MethodGet, "/products/1", nil, "")
		p := decode[handlers.ProductResponse](t, w)
		assert.Equal(t, "Mouse v2", p.Name)
		require.NotNil(t, p.SellPrice)
		assert.InDelta(t, 19.0, *p.SellPrice, 0.001)
	})

	t.Run("Missing required column", func(t *testing.T) {
		s := newServer(t)
		w := s.upload(t, "/products/import", "products.csv", []byte("name,price\nMouse,1"))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, `missing column "article"`, decode[handlers.DetailResponse](t, w).Detail)
	})

	t.Run("Missing file", func(t *testing.T) {
		s := newServer(t)
		w := s.do(t, http.MethodPost, "/products/import", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing file", decode[handlers.DetailResponse](t, w).Detail)
	})

	t.Run("XLSX workbook", func(t *testing.T) {
		s := newServer(t)

		f := excelize.NewFile()
		defer f.Close()
		rows := [][]any{
			{"article", "name", "sell_price"},
			{3001, "Monitor", 199.5},
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
		}
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)

		w := s.upload(t, "/products/import", "products.xlsx", buf.Bytes())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, 1, decode[handlers.ImportProductsResult](t, w).ImportedProductsCount)
	})
}

func TestImportProductsHandler_RowErrors(t *testing.T) {
	csvData := `article,name,sell_price
1001,Mouse,25.99`

	tests := []struct {
		name     string
		seed     bool
		redacted bool
		mode     string
		detail   string
	}{
		{"create", false, false, "skip", `create_product: relation "products" is locked by pid 4242`},
		{"create redacted", false, true, "skip", "internal server error"},
		{"update redacted", true, true, "update", "failed to update article 1001: internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []serverOption{withProductRepo(func(r repo.ProductRepository) repo.ProductRepository {
				if tt.seed {
					_, err := r.Create(t.Context(), models.Product{Article: 1001, Name: "Mouse", IsActive: true})
					require.NoError(t, err)
				}
				return brokenProducts{r}
			})}
			if tt.redacted {
				opts = append(opts, withRedactedErrors())
			}
			s := newServer(t, opts...)

			w := s.upload(t, "/products/import?mode="+tt.mode, "products.csv", []byte(csvData))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decode[handlers.ImportProductsResult](t, w)
			assert.Zero(t, resp.ImportedProductsCount)
			require.Len(t, resp.Errors, 1)
			assert.Equal(t, "row 2", resp.Errors[0].Field)
			assert.Equal(t, tt.detail, resp.Errors[0].Description)
		})
	}
}

func TestImportProductsHandler_UnknownCategoryStaysReadable(t *testing.T) {
	s := newServer(t, withRedactedErrors())
	csvData := `article,name,category_id
1001,Mouse,9`

	w := s.upload(t, "/products/import", "products.csv", []byte(csvData))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[handlers.ImportProductsResult](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Category not found", resp.Errors[0].Description)
}

func TestExportProductsHandler(t *testing.T) {
	s := newServer(t)
	s.createProduct(t, 1001, "Mouse")
	s.createProduct(t, 1002, "Keyboard")

	t.Run("csv", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/products/export", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))

		records, err := csv.NewReader(w.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "article", records[0][0])
		assert.Equal(t, []string{"1001", "Mouse", "", "", "", "", "true"}, records[1])
	})

	t.Run("xlsx", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/products/export?format=xlsx", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Products")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Keyboard", rows[2][1])
	})

	t.Run("json", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/products/export?format=json", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]handlers.ProductResponse](t, w), 2)
	})

	t.Run("unknown format", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/products/export?format=pdf", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exported csv imports back", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/products/export", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		target := newServer(t)
		w = target.upload(t, "/products/import", "products.csv", w.Body.Bytes())
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, decode[handlers.ImportProductsResult](t, w).ImportedProductsCount)
	})
}
