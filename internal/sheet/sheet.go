// Package sheet decodes uploaded spreadsheets into catalog rows.
//
// The first worksheet of an .xlsx workbook, or a CSV file, is read with its
// first row as the header. Every following non-blank row becomes a
// core.Row keyed by header name.
package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// Format is a supported upload format.
type Format int

const (
	FormatUnknown Format = iota
	FormatXLSX
	FormatCSV
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatCSV:
		return "csv"
	default:
		return "unknown"
	}
}

// ErrUnsupportedType is returned for files that are not .xlsx, .xls or .csv.
var ErrUnsupportedType = errors.New("unsupported file type: expected .xlsx, .xls or .csv")

// ErrLegacyWorkbook is returned for binary BIFF .xls workbooks.
var ErrLegacyWorkbook = core.ErrLegacyWorkbook

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	utf8BOM  = []byte{0xEF, 0xBB, 0xBF}
)

// FormatFor picks the decoder from the file name extension.
// .xls is read as a workbook; the content decides whether it is usable.
func FormatFor(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xls":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return FormatUnknown, ErrUnsupportedType
	}
}

// Read decodes r according to fileName's extension.
// Decoding failures are wrapped with "read spreadsheet".
func Read(fileName string, r io.Reader) ([]core.Row, error) {
	format, err := FormatFor(fileName)
	if err != nil {
		return nil, err
	}

	var rows []core.Row
	switch format {
	case FormatXLSX:
		rows, err = readWorkbook(r)
	case FormatCSV:
		rows, err = readCSV(r)
	}
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet %s: %w", filepath.Base(fileName), err)
	}
	return rows, nil
}

func readWorkbook(r io.Reader) ([]core.Row, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(oleMagic))
	switch {
	case bytes.HasPrefix(head, oleMagic):
		return nil, ErrLegacyWorkbook
	case !bytes.HasPrefix(head, zipMagic):
		return nil, errors.New("file is not an Excel workbook")
	}

	f, err := excelize.OpenReader(br)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return gridRows(grid), nil
}

// gridRows maps a header row plus data rows to core.Rows. Blank rows are
// skipped and cells under an empty header are dropped.
func gridRows(grid [][]string) []core.Row {
	if len(grid) == 0 {
		return nil
	}
	header := grid[0]

	rows := make([]core.Row, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		row := make(core.Row, len(header))
		blank := true
		for i, name := range header {
			if name == "" {
				continue
			}
			var v string
			if i < len(cells) {
				v = cells[i]
			}
			if strings.TrimSpace(v) != "" {
				blank = false
			}
			row[name] = v
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows
}

// csvRecord holds every accepted header spelling.
type csvRecord struct {
	ProductUpper string `csv:"PRODUCT"`
	ProductTitle string `csv:"Product"`
	ProductLower string `csv:"product"`
	UnitUpper    string `csv:"UNIT"`
	UnitTitle    string `csv:"Unit"`
	UnitLower    string `csv:"unit"`
	CompanyUpper string `csv:"COMPANY FULL NAME"`
	CompanyTitle string `csv:"Company"`
	CompanyLower string `csv:"company"`
}

func (c csvRecord) fields() map[string]string {
	return map[string]string{
		"PRODUCT":           c.ProductUpper,
		"Product":           c.ProductTitle,
		"product":           c.ProductLower,
		"UNIT":              c.UnitUpper,
		"Unit":              c.UnitTitle,
		"unit":              c.UnitLower,
		"COMPANY FULL NAME": c.CompanyUpper,
		"Company":           c.CompanyTitle,
		"company":           c.CompanyLower,
	}
}

func readCSV(r io.Reader) ([]core.Row, error) {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	dec, err := csvutil.NewDecoder(csv.NewReader(br))
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	present := make(map[string]bool)
	for _, h := range dec.Header() {
		present[h] = true
	}

	var rows []core.Row
	for {
		var rec csvRecord
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode CSV record: %w", err)
		}

		if blankRecord(dec.Record()) {
			continue
		}
		row := make(core.Row)
		for name, v := range rec.fields() {
			if present[name] {
				row[name] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func blankRecord(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
