package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"stock.xlsx", FormatXLSX, false},
		{"STOCK.XLS", FormatXLSX, false},
		{"stock.csv", FormatCSV, false},
		{"stock.pdf", FormatUnknown, true},
		{"stock", FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFor(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := "\uFEFFPRODUCT,UNIT,COMPANY FULL NAME,MRP\n" +
		"ENSURE VAN,400GM,ABBOTT HEALTH(NUT),650\n" +
		",,,\n" +
		"COLGATE TP,100GM,COLGATE,55\n"

	rows, err := Read("stock.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, core.Row{"PRODUCT": "ENSURE VAN", "UNIT": "400GM", "COMPANY FULL NAME": "ABBOTT HEALTH(NUT)"}, rows[0])
	assert.Equal(t, "COLGATE", rows[1]["COMPANY FULL NAME"])

	products, err := core.Normalize(rows)
	require.NoError(t, err)
	assert.Equal(t, core.CategoryNutrition, products[0].Category)
	assert.Equal(t, core.CategoryOralCare, products[1].Category)
}

func TestReadCSV_LowerCaseHeaders(t *testing.T) {
	input := "product,unit,company\nDOVE SOAP,100GM,UNILEVER\n"

	rows, err := Read("stock.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, hasUpper := rows[0]["PRODUCT"]
	assert.False(t, hasUpper, "absent headers must not appear in the row")
	assert.Equal(t, "DOVE SOAP", rows[0]["product"])
}

func TestReadCSV_UnknownColumnsKeepRows(t *testing.T) {
	input := "Name,Maker\nDOVE SOAP,UNILEVER\n"

	rows, err := Read("stock.csv", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = core.Normalize(rows)
	var ve *core.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, 1, ve.Row)
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := Read("stock.csv", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = Read("stock.csv", strings.NewReader("PRODUCT,UNIT,COMPANY FULL NAME\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadCSV_Ragged(t *testing.T) {
	input := "PRODUCT,UNIT,COMPANY FULL NAME\nENSURE,400GM\n"

	_, err := Read("stock.csv", strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read spreadsheet")
}

func workbook(t *testing.T, grid [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, cells := range grid {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadWorkbook(t *testing.T) {
	data := workbook(t, [][]any{
		{"PRODUCT", "UNIT", "COMPANY FULL NAME"},
		{"ENSURE VAN", "400GM", "ABBOTT HEALTH(NUT)"},
		{"", "", ""},
		{"PAMPERS", "NB10", "P&G"},
		{"WHISPER"},
	})

	rows, err := Read("stock.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ENSURE VAN", rows[0]["PRODUCT"])
	assert.Equal(t, "P&G", rows[1]["COMPANY FULL NAME"])
	assert.Equal(t, "", rows[2]["COMPANY FULL NAME"])

	_, err = core.Normalize(rows)
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 3, ve.Row)
}

func TestReadWorkbook_NumericCells(t *testing.T) {
	data := workbook(t, [][]any{
		{"Product", "Unit", "Company"},
		{"CROCIN", 10, "GSK CONSUMER"},
	})

	rows, err := Read("stock.xls", bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10", rows[0]["Unit"])
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"legacy", append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...), "legacy binary .xls"},
		{"text", []byte("PRODUCT,UNIT\n"), "not an Excel workbook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read("stock.xls", bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "read spreadsheet")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGridRows(t *testing.T) {
	assert.Nil(t, gridRows(nil))

	rows := gridRows([][]string{
		{"PRODUCT", "", "COMPANY FULL NAME"},
		{"A", "ignored", "B"},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, core.Row{"PRODUCT": "A", "COMPANY FULL NAME": "B"}, rows[0])
}
