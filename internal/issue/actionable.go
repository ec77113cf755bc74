// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"slices"
	"strings"
)

type (
	// ActionableError describes a failed user-visible operation: what modpad
	// tried, on which file, and what to try next.
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load document").
	//		WithResource("quests/intro.cbor").
	//		WithSuggestion("Check that the file exists").
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase such as "load document".
		Operation   string
		Resource    string
		Suggestions []string
		// Issue selects the longer catalog guidance; zero means none.
		Issue Id
		Cause error
	}

	// ErrorContext accumulates the fields of an ActionableError.
	ErrorContext struct {
		ae ActionableError
	}
)

// NewErrorContext starts an empty builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithContext is shorthand for an ActionableError without suggestions.
// A nil err stays nil.
func WrapWithContext(err error, operation, resource string) error {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// Error renders "failed to <operation>[: <resource>][: <cause>]".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders Error() followed by one bullet per suggestion. In verbose
// mode the numbered cause chain is appended:
//
//	failed to parse document: items.toml: toml: line 3: unexpected token
//
//	  • Check the TOML syntax
//
//	Error chain:
//	  1. toml: line 3: unexpected token
//	  2. line 3: unexpected token
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, s := range e.Suggestions {
			msg.WriteString("\n  • " + s)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		for i, line := range causeChain(e.Cause, 0) {
			fmt.Fprintf(&msg, "\n  %d. %s", i+1, line)
		}
	}

	return msg.String()
}

// causeChain lists err and everything it wraps, depth first. Errors that
// wrap several causes (errors.Join) contribute each branch indented one
// level deeper.
func causeChain(err error, depth int) []string {
	var lines []string
	for err != nil {
		lines = append(lines, strings.Repeat("   ", depth)+err.Error())
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, branch := range x.Unwrap() {
				lines = append(lines, causeChain(branch, depth+1)...)
			}
			return lines
		case interface{ Unwrap() error }:
			err = x.Unwrap()
		default:
			err = nil
		}
	}
	return lines
}

func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.ae.Operation = op
	return c
}

func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.ae.Resource = res
	return c
}

// WithSuggestion appends a hint. Blank and repeated hints are ignored.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	sug = strings.TrimSpace(sug)
	if sug != "" && !slices.Contains(c.ae.Suggestions, sug) {
		c.ae.Suggestions = append(c.ae.Suggestions, sug)
	}
	return c
}

func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.ae.Issue = id
	return c
}

func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.ae.Cause = err
	return c
}

// Build returns a copy of the accumulated error, or nil when no operation
// was set.
func (c *ErrorContext) Build() *ActionableError {
	if c.ae.Operation == "" {
		return nil
	}
	ae := c.ae
	ae.Suggestions = slices.Clone(c.ae.Suggestions)
	return &ae
}

// BuildError is Build returning the error interface, so a missing operation
// yields an untyped nil.
func (c *ErrorContext) BuildError() error {
	if ae := c.Build(); ae != nil {
		return ae
	}
	return nil
}
