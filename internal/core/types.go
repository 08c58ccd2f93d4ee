package core

import (
	"fmt"
	"time"
)

// Product is a single catalog entry.
// Products are created during ingestion and never mutated afterwards;
// the catalog as a whole is replaced by the next successful upload.
type Product struct {
	ID       string `json:"id,omitempty"` // Assigned by the primary store, empty otherwise
	Name     string `json:"name"`
	Unit     string `json:"unit"` // Packaging descriptor: "400GM", "2+1 OFFER"
	Company  string `json:"company"`
	Category string `json:"category"` // Always a member of the taxonomy
}

// Row is one decoded spreadsheet row: column name to scalar cell value.
type Row map[string]any

// Column name variants accepted for each field, first present wins.
var (
	NameColumns    = []string{"PRODUCT", "Product", "product"}
	UnitColumns    = []string{"UNIT", "Unit", "unit"}
	CompanyColumns = []string{"COMPANY FULL NAME", "Company", "company"}
)

// Filter sentinels used by the catalog page dropdowns.
const (
	AllCategories = "All Categories"
	AllCompanies  = "All Companies"
)

// DefaultPageSize is the number of products shown per catalog page.
const DefaultPageSize = 24

// Criteria holds the user-supplied catalog filters.
type Criteria struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Company  string `json:"company"`
}

// Changed reports whether any filter differs from prev.
// The catalog view resets to page 1 whenever this is true.
func (c Criteria) Changed(prev Criteria) bool {
	return c.Search != prev.Search || c.Category != prev.Category || c.Company != prev.Company
}

// Page is one page of query results.
type Page struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	First      int       `json:"first"` // 1-based index of the first item shown, 0 when empty
	Last       int       `json:"last"`
}

// ProductView is a product with its presentation-derived fields.
// Derived fields are computed per request and never stored.
type ProductView struct {
	Product
	DisplayUnit  string `json:"displayUnit"`
	SpecialOffer bool   `json:"specialOffer"`
	Promotion    bool   `json:"promotion"`
}

// UploadResult describes a completed catalog upload.
type UploadResult struct {
	UploadID string        `json:"uploadId"`
	FileName string        `json:"fileName"`
	Count    int           `json:"count"`
	Storage  string        `json:"storage"` // "primary database" or "local storage"
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
}

// Source identifies which backend served or received a catalog.
type Source int

const (
	SourceSeed Source = iota
	SourceLocal
	SourcePrimary
)

func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceLocal:
		return "local"
	default:
		return "seed"
	}
}

// StorageLabel is the operator-facing name of a write target.
func (s Source) StorageLabel() string {
	switch s {
	case SourcePrimary:
		return "primary database"
	case SourceLocal:
		return "local storage"
	default:
		return "sample data"
	}
}

// MarshalText encodes the source by name in JSON responses.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a source name written by MarshalText.
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "seed":
		*s = SourceSeed
	case "local":
		*s = SourceLocal
	case "primary":
		*s = SourcePrimary
	default:
		return fmt.Errorf("unknown catalog source %q", text)
	}
	return nil
}

// Snapshot is a catalog as read from storage, tagged with where it came from.
type Snapshot struct {
	Products []Product
	Source   Source
}
