package errors

import "errors"

// ErrDuplicate a unique constraint rejected the write
var ErrDuplicate = errors.New("record already exists")

// ErrScopeRequired a bulk mutation was called without an explicit target
var ErrScopeRequired = errors.New("bulk operation requires an explicit scope")
