// Package errors provides actionable error handling with context-aware suggestions.
//
// It enriches standard Go errors with a category and actionable suggestions so
// consumers of a failed scan can tell a permission problem from a missing path
// or a dead SFTP connection, and show the user something they can act on.
//
// Basic usage:
//
//	enricher := errors.NewEnricher()
//	if err := scan(); err != nil {
//	    actionable := enricher.Enrich(err, "/restricted/dir")
//	    fmt.Println(actionable.Error())
//	    fmt.Println(errors.FormatSuggestions(actionable))
//	}
package errors

import "strings"

// Exported constants.
const (
	CategoryConnection ErrorCategory = "connection"
	CategoryDecode     ErrorCategory = "decode"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	original error,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		original:     original,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

type actionableError struct {
	original     error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

func (e *actionableError) Error() string {
	return e.original.Error()
}

// Unwrap exposes the original error to errors.Is/As.
func (e *actionableError) Unwrap() error {
	return e.original
}

func (e *actionableError) OriginalError() string {
	return e.original.Error()
}

func (e *actionableError) Category() ErrorCategory {
	return e.category
}

func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// FormatSuggestions formats the suggestions from an ActionableError as a
// bulleted list. Returns an empty string if the error is nil, is not
// actionable, or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("Try these solutions:")
	for _, suggestion := range suggestions {
		builder.WriteString("\n  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}
