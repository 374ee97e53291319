package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-backend/internal/models"
	repo "github.com/rogerio-castellano/inventory-backend/internal/repo"
)

const productSheet = "Products"

var exportColumns = []string{"article", "name", "purchase_price", "sell_price", "category_id", "unit_id", "is_active"}

type importRow struct {
	Num           int
	Err           error
	Article       int
	Name          string
	PurchasePrice *decimal.Decimal
	SellPrice     *decimal.Decimal
	CategoryID    *int
	UnitID        *int
}

// readRows returns the header and data rows of an uploaded CSV or XLSX file.
func readRows(file io.Reader, filename string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		f, err := excelize.OpenReader(file)
		if err != nil {
			return nil, fmt.Errorf("invalid XLSX file: %w", err)
		}
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
		if err != nil {
			return nil, fmt.Errorf("XLSX read error: %w", err)
		}
		return rows, nil
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSV read error: %v", err)
	}
	return rows, nil
}

func parseImportRows(rows [][]string) ([]importRow, error) {
	if len(rows) == 0 {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"article", "name"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	parsed := make([]importRow, 0, len(rows)-1)
	for n, record := range rows[1:] {
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		row, err := parseImportRow(get)
		row.Num = n + 2 // header is row 1
		row.Err = err
		parsed = append(parsed, row)
	}
	return parsed, nil
}

func parseImportRow(get func(string) string) (importRow, error) {
	var row importRow

	article, err := strconv.Atoi(get("article"))
	if err != nil || article <= 0 {
		return row, errors.New("invalid article")
	}
	row.Article = article

	row.Name = get("name")
	if row.Name == "" {
		return row, errors.New("missing name")
	}

	if row.PurchasePrice, err = parsePrice(get("purchase_price")); err != nil {
		return row, fmt.Errorf("invalid purchase_price: %w", err)
	}
	if row.SellPrice, err = parsePrice(get("sell_price")); err != nil {
		return row, fmt.Errorf("invalid sell_price: %w", err)
	}
	if row.CategoryID, err = parseOptionalID(get("category_id")); err != nil {
		return row, errors.New("invalid category_id")
	}
	if row.UnitID, err = parseOptionalID(get("unit_id")); err != nil {
		return row, errors.New("invalid unit_id")
	}
	return row, nil
}

func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if d.IsNegative() {
		return nil, errors.New("price cannot be negative")
	}
	return &d, nil
}

func parseOptionalID(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return nil, errors.New("invalid id")
	}
	return &v, nil
}

// importRowDetail is the report text for a row the repository rejected.
// Only reference errors survive redaction.
func importRowDetail(rowNum int, err error) string {
	var refErr *repo.ReferenceError
	if errors.As(err, &refErr) {
		return refErr.Error()
	}
	logger.Warn("import row failed", zap.Int("row", rowNum), zap.Error(err))
	switch {
	case !redactErrors:
		return err.Error()
	case errors.Is(err, repo.ErrConflict):
		return productEntity + " conflicts with existing records"
	default:
		return internalErrorDetail
	}
}

// ImportProductsHandler godoc
// @Summary Import products via CSV or XLSX
// @Description Rows are matched by article. mode=skip reports existing articles, mode=update patches them.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV or XLSX file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} DetailResponse "Invalid file"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	rows, err := readRows(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := parseImportRows(rows)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	imported := 0
	errorsList := []ValidationError{}
	fail := func(rowNum int, format string, args ...any) {
		errorsList = append(errorsList, ValidationError{
			Field:       "row " + strconv.Itoa(rowNum),
			Description: fmt.Sprintf(format, args...),
		})
	}

	for _, rec := range records {
		rowNum := rec.Num
		if rec.Err != nil {
			fail(rowNum, "%v", rec.Err)
			continue
		}

		existing, err := productRepo.GetByArticle(ctx, rec.Article)
		switch {
		case err == nil:
			if mode == "skip" {
				fail(rowNum, "product with article %d already exists", rec.Article)
				continue
			}
			_, err := productRepo.Update(ctx, existing.ID, repo.ProductPatch{
				Name:          &rec.Name,
				PurchasePrice: models.FromPtr(rec.PurchasePrice),
				SellPrice:     models.FromPtr(rec.SellPrice),
				CategoryID:    models.FromPtr(rec.CategoryID),
				UnitID:        models.FromPtr(rec.UnitID),
			})
			if err != nil {
				fail(rowNum, "failed to update article %d: %s", rec.Article, importRowDetail(rowNum, err))
				continue
			}
		case errors.Is(err, repo.ErrNotFound):
			_, err := productRepo.Create(ctx, models.Product{
				Article:       rec.Article,
				Name:          rec.Name,
				PurchasePrice: nullPrice(rec.PurchasePrice),
				SellPrice:     nullPrice(rec.SellPrice),
				IsActive:      true,
				CategoryID:    rec.CategoryID,
				UnitID:        rec.UnitID,
			})
			if err != nil {
				fail(rowNum, "%s", importRowDetail(rowNum, err))
				continue
			}
		default:
			fail(rowNum, "lookup failed: %s", importRowDetail(rowNum, err))
			continue
		}
		imported++
	}

	logger.Info("products imported",
		zap.String("mode", mode),
		zap.Int("imported", imported),
		zap.Int("rejected", len(errorsList)),
	)
	respond(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}

func productRecord(p models.Product) []string {
	price := func(d decimal.NullDecimal) string {
		if !d.Valid {
			return ""
		}
		return d.Decimal.StringFixed(2)
	}
	id := func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	}
	return []string{
		strconv.Itoa(p.Article),
		p.Name,
		price(p.PurchasePrice),
		price(p.SellPrice),
		id(p.CategoryID),
		id(p.UnitID),
	}
}

func exportCSV(products []models.Product) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, p := range products {
		if err := cw.Write(append(productRecord(p), strconv.FormatBool(p.IsActive))); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	return buf.Bytes(), cw.Error()
}

func exportXLSX(products []models.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(productSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	header := exportColumns
	if err := f.SetSheetRow(productSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	if err := f.SetCellStyle(productSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{p.Article, p.Name, nil, nil, nil, nil, p.IsActive}
		if p.PurchasePrice.Valid {
			row[2] = p.PurchasePrice.Decimal.InexactFloat64()
		}
		if p.SellPrice.Valid {
			row[3] = p.SellPrice.Decimal.InexactFloat64()
		}
		if p.CategoryID != nil {
			row[4] = *p.CategoryID
		}
		if p.UnitID != nil {
			row[5] = *p.UnitID
		}
		if err := f.SetSheetRow(productSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportProductsHandler godoc
// @Summary Export products
// @Tags products
// @Produce json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format (csv|json|xlsx)"
// @Success 200 {file} file
// @Failure 400 {object} DetailResponse "Unknown format"
// @Router /products/export [get]
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "format must be csv, json or xlsx")
		return
	}

	products, _, err := productRepo.List(r.Context(), repo.ProductFilter{})
	if err != nil {
		writeRepoError(w, r, err, productEntity)
		return
	}

	if format == "json" {
		resp := make([]ProductResponse, len(products))
		for i, p := range products {
			resp[i] = toProductResponse(p)
		}
		respond(w, http.StatusOK, resp, http.Header{
			"Content-Disposition": []string{`attachment; filename="products.json"`},
		})
		return
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "xlsx":
		data, err = exportXLSX(products)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		data, err = exportCSV(products)
		contentType = "text/csv"
	}
	if err != nil {
		logger.Error("product export failed", zap.String("format", format), zap.Error(err))
		writeError(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="products.%s"`, format))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Warn("failed to write export", zap.Error(err))
	}
}
