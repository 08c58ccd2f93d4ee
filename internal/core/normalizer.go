package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBatch is returned when an upload yields no products,
// typically a sheet with only a header row.
var ErrEmptyBatch = errors.New("empty file: no valid products found in the file")

// ErrLegacyWorkbook is returned for binary BIFF .xls workbooks, which
// cannot be decoded; the operator has to re-save the file as .xlsx.
var ErrLegacyWorkbook = errors.New("legacy binary .xls workbook; save it as .xlsx")

// ValidationError rejects an upload batch because one row lacks a usable
// product name or company. The whole batch is refused, never part of it.
type ValidationError struct {
	Row     int    // 1-based data row number (header excluded)
	Field   string // "name" or "company"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// missingColumnsMessage is shown to the operator verbatim.
const missingColumnsMessage = "missing required columns: PRODUCT, COMPANY FULL NAME"

// Normalize converts decoded spreadsheet rows into classified products.
// It is all-or-nothing: the first row without a name or company aborts
// the batch with a *ValidationError, and an input without rows returns
// ErrEmptyBatch.
func Normalize(rows []Row) ([]Product, error) {
	products := make([]Product, 0, len(rows))

	for i, row := range rows {
		name := lookup(row, NameColumns)
		unit := lookup(row, UnitColumns)
		company := lookup(row, CompanyColumns)

		if name == "" {
			return nil, &ValidationError{Row: i + 1, Field: "name", Message: missingColumnsMessage}
		}
		if company == "" {
			return nil, &ValidationError{Row: i + 1, Field: "company", Message: missingColumnsMessage}
		}

		products = append(products, Product{
			Name:     name,
			Unit:     unit,
			Company:  company,
			Category: Classify(name, company),
		})
	}

	if len(products) == 0 {
		return nil, ErrEmptyBatch
	}
	return products, nil
}

// lookup returns the trimmed string value of the first key in keys whose
// cell is set. Nil, empty, false and zero cells count as unset and fall
// through to the next variant.
func lookup(row Row, keys []string) string {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || isBlankCell(v) {
			continue
		}
		return strings.TrimSpace(cellString(v))
	}
	return ""
}

func isBlankCell(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case int:
		return t == 0
	case int64:
		return t == 0
	case float64:
		return t == 0
	}
	return false
}

func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
