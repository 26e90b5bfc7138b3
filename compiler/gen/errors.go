// Package gen builds the enriched generator graph from a loaded DMMF document.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidDirective indicates a malformed documentation directive.
	ErrInvalidDirective = errors.New("zodgen: invalid directive")
	// ErrUnknownAction indicates an operation name without a recognized verb.
	ErrUnknownAction = errors.New("zodgen: unknown action")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("zodgen: missing configuration")
)

// DirectiveError represents an invalid directive embedded in a model's
// documentation. It always carries the owning model's name.
type DirectiveError struct {
	Model   string // owning model name
	Tag     string // directive tag that was found
	Message string
}

// Error implements the error interface.
func (e *DirectiveError) Error() string {
	var b strings.Builder
	b.WriteString("zodgen: directive error")
	if e.Model != "" {
		b.WriteString(" on model ")
		b.WriteString(e.Model)
	}
	if e.Tag != "" {
		fmt.Fprintf(&b, " (tag: %q)", e.Tag)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DirectiveError.
func (e *DirectiveError) Is(target error) bool {
	return target == ErrInvalidDirective
}

// NewDirectiveError creates a new DirectiveError.
func NewDirectiveError(model, tag, message string) *DirectiveError {
	return &DirectiveError{
		Model:   model,
		Tag:     tag,
		Message: message,
	}
}

// ActionError represents an operation whose name violates the upstream input
// contract, e.g. it contains no recognized verb. This is a precondition
// breach by the collaborator supplying the raw schema, not a user error.
type ActionError struct {
	Action  string // raw operation name
	Message string
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	var b strings.Builder
	b.WriteString("zodgen: action error")
	if e.Action != "" {
		b.WriteString(" on action ")
		b.WriteString(e.Action)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ActionError.
func (e *ActionError) Is(target error) bool {
	return target == ErrUnknownAction
}

// NewActionError creates a new ActionError.
func NewActionError(action, message string) *ActionError {
	return &ActionError{
		Action:  action,
		Message: message,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("zodgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("zodgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsDirectiveError reports whether the error is a DirectiveError.
func IsDirectiveError(err error) bool {
	var dirErr *DirectiveError
	return errors.As(err, &dirErr)
}

// IsActionError reports whether the error is an ActionError.
func IsActionError(err error) bool {
	var actErr *ActionError
	return errors.As(err, &actErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
