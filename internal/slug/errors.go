// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package slug

import "errors"

// Error kinds. Every error returned by this package wraps one or more of
// these, so callers should test with errors.Is.
var (
	ErrLocked           = errors.New("locked")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidSlug      = errors.New("invalid slug")
	ErrPathNotFound     = errors.New("path not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrTypeConflict     = errors.New("type conflict")
	ErrUnsupportedType  = errors.New("unsupported type")
)
