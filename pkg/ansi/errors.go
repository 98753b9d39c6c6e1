// ABOUTME: Sentinel errors shared by the ansi package
// ABOUTME: Byte-accepting entry points wrap ErrInvalidUTF8 on undecodable input

package ansi

import "errors"

// ErrInvalidUTF8 reports byte input that must be treated as text but
// does not decode as valid UTF-8. Callers match it with errors.Is.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 input")
