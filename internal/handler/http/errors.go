// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GremahTech

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInsufficientRole is returned by the role middleware when the
	// authenticated account does not carry the role required by the route.
	ErrInsufficientRole = errors.New("insufficient role")
)
