// Package errs defines the sentinel errors shared by every emdf package.
//
// Call sites wrap these with additional context using fmt.Errorf's %w verb,
// e.g. fmt.Errorf("%w: goods_num %d exceeds max %d", errs.ErrFormat, n, max),
// so callers can still use errors.Is(err, errs.ErrFormat) after the wrap.
package errs

import "errors"

var (
	// ErrIO indicates a file open/read/write failure, including a read past EOF.
	ErrIO = errors.New("emdf: io error")

	// ErrFormat indicates a malformed header: bad magic, goods_num out of range,
	// or a header shorter than the fixed 1,048,576-byte size.
	ErrFormat = errors.New("emdf: format error")

	// ErrNotFound indicates a requested instrument id is absent from the table.
	ErrNotFound = errors.New("emdf: instrument not found")

	// ErrCorruptChain indicates that a record stream ended with a non-empty
	// carry buffer. A block-chain walk that stops at its sentinel before
	// reaching data_num records is not reported with this error; it simply
	// ends early.
	ErrCorruptChain = errors.New("emdf: corrupt chain")

	// ErrEncodeRange indicates a value has no exact XInt32 representation.
	ErrEncodeRange = errors.New("emdf: value out of xint32 range")

	// ErrNotImplemented indicates a declared but unimplemented writer operation.
	ErrNotImplemented = errors.New("emdf: not implemented")
)
