// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GremahTech

// Package adapter provides outbound transport-layer abstractions for
// communicating with collaborating services.
//
// The primary abstraction is [ProfileAdapter], which decouples the
// authentication core from the farmer profile service. The package ships an
// HTTP/REST implementation ([NewHTTPProfileAdapter]) that tags every call
// with the internal-service trust header so the profile service can bypass
// its own authentication for these trusted calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Profile calls are best-effort by contract: the caller is
// expected to log and discard the returned error, never to fail the
// operation that triggered the call.
package adapter

import (
	"context"

	"github.com/gremahtech/agri-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_adapter_mock.go -package=mock

// ProfileAdapter defines the outbound contract with the farmer profile
// service. Implementations are responsible for serialisation, the
// internal-service trust header, bounding every call with a timeout, and
// mapping transport-level failures to the sentinel values defined in this
// package.
//
// Both operations are invoked at most once per triggering event and are
// never retried by the core.
type ProfileAdapter interface {
	// CreateProfile notifies the profile service about a newly registered
	// farmer account, carrying the account identifier and contact fields.
	// Returns an error if the request fails or the service responds with a
	// non-2xx status; the caller absorbs that error after logging it.
	CreateProfile(ctx context.Context, profile models.FarmerProfile) error

	// DeleteProfile asks the profile service to remove the profile keyed by
	// the given account identifier. Like CreateProfile, failures are
	// reported to the caller only for logging.
	DeleteProfile(ctx context.Context, userID int64) error
}
