package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	repo "github.com/rogerio-castellano/storefront/internal/repo"
)

type csvRow struct {
	Name       string
	Price      float64
	Stock      int
	CategoryID string
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(h)] = i
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:  record[index["name"]],
			Price: parseFloat(record[index["price"]]),
			Stock: parseInt(record[index["stock"]]),
		}
		if i, ok := index["categoryid"]; ok {
			row.CategoryID = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.Price <= 0 {
		return errors.New("invalid price")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: name,price,stock,categoryId. Mode "skip" leaves existing names alone, "update" overwrites them
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ValidationError

	for i, row := range records {
		if err := validateRow(row); err != nil {
			errorsList = append(errorsList, ValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: err.Error(),
			})
			continue
		}

		var categoryID *string
		if strings.TrimSpace(row.CategoryID) != "" {
			categoryID = &row.CategoryID
		}

		existing, err := productRepo.GetByName(row.Name)
		switch {
		case err == nil && mode == "skip":
			continue
		case err == nil:
			_, err = productRepo.Update(existing.ID, repo.ProductPatch{
				Price:      &row.Price,
				Stock:      &row.Stock,
				CategoryID: categoryID,
			})
		case errors.Is(err, repo.ErrProductNotFound):
			_, err = productRepo.Create(row.Name, row.Price, row.Stock, categoryID)
		}
		if err != nil {
			errorsList = append(errorsList, ValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: "could not import product",
			})
			continue
		}
		imported++
	}

	if errorsList == nil {
		errorsList = []ValidationError{}
	}
	writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
