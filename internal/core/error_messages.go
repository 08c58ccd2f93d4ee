package core

// error_messages.go maps technical errors to operator-facing messages.
//
// Each message carries a code the operator can quote when reporting a
// problem:
//
//	VAL001 - Row missing PRODUCT or COMPANY FULL NAME (message is verbatim)
//	VAL002 - No products found in the file
//	VAL003 - Unsupported file type (xlsx, xls and csv are accepted)
//	VAL004 - Spreadsheet could not be read
//	STO001 - Primary database rejected or did not answer the write
//	STO002 - No storage available for the upload
//	UPL001 - Another upload is in progress
//	UPL002 - Upload timed out
//	UPL003 - Upload cancelled
//	FILE001 - File too large
//	FILE002 - No file selected
//	AUTH001 - Missing operator password
//	AUTH002 - Wrong operator password
//	RATE001 - Too many requests
//	ERR000 - Anything else; check the server log for the technical error
//
// Known sentinels are matched with errors.Is first, so a timeout inside a
// primary write reports UPL002 rather than STO001. Everything else is
// matched case-insensitively with strings.Contains and the first match
// wins, so specific patterns come before general ones.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

type errorSentinel struct {
	target error
	msg    UserMessage
}

var errorSentinels = []errorSentinel{
	{
		target: ErrLegacyWorkbook,
		msg: UserMessage{
			Message: "The spreadsheet could not be read",
			Action:  "This is an old binary .xls file; open it in Excel, save as .xlsx and upload again",
			Code:    "VAL004",
		},
	},
	{
		target: context.DeadlineExceeded,
		msg: UserMessage{
			Message: "Upload timed out",
			Action:  "Check the database connection and try again",
			Code:    "UPL002",
		},
	},
	{
		target: context.Canceled,
		msg: UserMessage{
			Message: "Upload was cancelled",
			Action:  "Start a new upload when ready",
			Code:    "UPL003",
		},
	},
}

var errorPatterns = []errorPattern{
	{
		pattern: "no valid products found",
		msg: UserMessage{
			Message: "No valid products found in the file",
			Action:  "Add product rows below the header and upload again",
			Code:    "VAL002",
		},
	},
	{
		pattern: "unsupported file type",
		msg: UserMessage{
			Message: "Please select a valid Excel file (.xlsx or .xls) or a CSV file",
			Action:  "Save the sheet as .xlsx or .csv and upload again",
			Code:    "VAL003",
		},
	},
	{
		pattern: "read spreadsheet",
		msg: UserMessage{
			Message: "The spreadsheet could not be read",
			Action:  "Check that the file opens in Excel and the first sheet holds the products",
			Code:    "VAL004",
		},
	},
	{
		pattern: "primary store unavailable",
		msg: UserMessage{
			Message: "Failed to upload products to database",
			Action:  "The catalog database may be partially updated; retry the upload",
			Code:    "STO001",
		},
	},
	{
		pattern: "no storage available",
		msg: UserMessage{
			Message: "Unable to store products - no storage available",
			Action:  "Configure a primary database or enable local storage",
			Code:    "STO002",
		},
	},
	{
		pattern: "too many concurrent uploads",
		msg: UserMessage{
			Message: "Another upload is in progress",
			Action:  "Please wait a moment and try again",
			Code:    "UPL001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Upload timed out",
			Action:  "Check the database connection and try again",
			Code:    "UPL002",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Upload was cancelled",
			Action:  "Start a new upload when ready",
			Code:    "UPL003",
		},
	},
	{
		pattern: "file too large",
		msg: UserMessage{
			Message: "File exceeds maximum size limit",
			Action:  "Split the sheet into a smaller file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Please select an Excel file to upload",
			Code:    "FILE002",
		},
	},
	{
		pattern: "missing operator password",
		msg: UserMessage{
			Message: "Password required",
			Action:  "Enter the admin password",
			Code:    "AUTH001",
		},
	},
	{
		pattern: "invalid operator password",
		msg: UserMessage{
			Message: "Invalid password",
			Action:  "Check the admin password and try again",
			Code:    "AUTH002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Row validation errors are passed through verbatim; then known sentinels
// and the text patterns are tried, falling back to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return UserMessage{
			Message: ve.Error(),
			Action:  "Every row needs PRODUCT and COMPANY FULL NAME; fix the sheet and upload again",
			Code:    "VAL001",
		}
	}

	for _, es := range errorSentinels {
		if errors.Is(err, es.target) {
			return es.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather
// than the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
