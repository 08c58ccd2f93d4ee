package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "validation error is passed through verbatim",
			err:         &ValidationError{Row: 3, Field: "name", Message: missingColumnsMessage},
			wantCode:    "VAL001",
			wantMessage: "row 3: missing required columns: PRODUCT, COMPANY FULL NAME",
		},
		{
			name:        "wrapped validation error",
			err:         fmt.Errorf("upload: %w", &ValidationError{Row: 1, Field: "company", Message: missingColumnsMessage}),
			wantCode:    "VAL001",
			wantMessage: "row 1: missing required columns: PRODUCT, COMPANY FULL NAME",
		},
		{
			name:        "empty batch",
			err:         ErrEmptyBatch,
			wantCode:    "VAL002",
			wantMessage: "No valid products found in the file",
		},
		{
			name:        "primary write failure",
			err:         errors.New("store catalog: primary store unavailable: insert: connection refused"),
			wantCode:    "STO001",
			wantMessage: "Failed to upload products to database",
		},
		{
			name:        "no storage",
			err:         errors.New("no storage available"),
			wantCode:    "STO002",
			wantMessage: "Unable to store products - no storage available",
		},
		{
			name:        "busy",
			err:         ErrTooManyUploads,
			wantCode:    "UPL001",
			wantMessage: "Another upload is in progress",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("UNSUPPORTED FILE TYPE .pdf"),
			wantCode:    "VAL003",
			wantMessage: "Please select a valid Excel file (.xlsx or .xls) or a CSV file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestMapError_SentinelsBeatPatterns(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantAction string
	}{
		{
			name:       "timeout inside a primary write",
			err:        fmt.Errorf("store catalog: %w", errors.Join(errors.New("primary store unavailable: postgres insert (3/10 done)"), context.DeadlineExceeded)),
			wantCode:   "UPL002",
			wantAction: "Check the database connection",
		},
		{
			name:       "cancelled primary write",
			err:        errors.Join(errors.New("primary store unavailable: mongo delete"), context.Canceled),
			wantCode:   "UPL003",
			wantAction: "Start a new upload",
		},
		{
			name:       "legacy workbook",
			err:        fmt.Errorf("read spreadsheet stock.xls: %w", ErrLegacyWorkbook),
			wantCode:   "VAL004",
			wantAction: "save as .xlsx",
		},
		{
			name:       "other unreadable workbook",
			err:        errors.New("read spreadsheet stock.xlsx: file is not an Excel workbook"),
			wantCode:   "VAL004",
			wantAction: "Check that the file opens in Excel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if !strings.Contains(got.Action, tt.wantAction) {
				t.Errorf("MapError() action = %q, want it to mention %q", got.Action, tt.wantAction)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	result := FormatUserError(errors.New("no storage available"))

	expected := "Unable to store products - no storage available (Code: STO002). Configure a primary database or enable local storage"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error is not user facing", nil, false},
		{"known error is user facing", ErrEmptyBatch, true},
		{"unknown error is not user facing", errors.New("random internal error xyz"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}
