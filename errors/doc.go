// Package errors provides structured error types for winutf8io.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the path or argument involved, the code page, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindIllegalSequence).
//		CodePage("windows-1252").
//		Detail("byte 0x81 has no mapping").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.IllegalSequence(errors.PhaseDecode, "utf-8", data)
//	err := errors.InvalidPath("rename", name, cause)
//
// A target with an empty Phase matches on Kind only:
//
//	errors.Is(err, &errors.Error{Kind: errors.KindNoResult})
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
