// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad   Op = "load configuration"
	OpConfigCreate Op = "create configuration"
	OpConfigApply  Op = "apply configuration"

	// Pictures
	OpImageList Op = "list images"
	OpImageRead Op = "read image"
	OpImageDraw Op = "draw image"

	// Quotes
	OpQuoteLoad Op = "load quotes"

	// Terminal
	OpTerminalQuery Op = "query terminal"
	OpTerminalWrite Op = "write to terminal"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error is an error tagged with the operation that failed, so the top level
// can print it with FormatWith.
type Error struct {
	Op      Op
	Context string
	Err     error
}

func (e *Error) Error() string {
	return FormatWith(e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with op. A nil err stays nil.
func Wrap(op Op, err error) error {
	return WrapWith(op, "", err)
}

// WrapWith tags err with op and context. A nil err stays nil.
func WrapWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Context: context, Err: err}
}
