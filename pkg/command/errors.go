// SPDX-License-Identifier: MPL-2.0

package command

import (
	"errors"
	"fmt"
)

// ErrStructuralDecode is the sentinel error wrapped by StructuralDecodeError.
var ErrStructuralDecode = errors.New("structural decode error")

// StructuralDecodeError is returned when JSON command text is not parseable
// or its root value is not an array. Cause carries the underlying parser
// failure.
type StructuralDecodeError struct {
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e *StructuralDecodeError) Error() string {
	return fmt.Sprintf("decode %s commands: %v", e.Format, e.Cause)
}

// Unwrap returns the parser failure. Is() matches ErrStructuralDecode.
func (e *StructuralDecodeError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrStructuralDecode.
func (e *StructuralDecodeError) Is(target error) bool {
	return target == ErrStructuralDecode
}
