// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GremahTech

package utils

import (
	"context"
	"testing"
)

func TestGetUsernameFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, "alice")

	username, ok := GetUsernameFromContext(ctx)
	if !ok {
		t.Fatal("expected username to be present in context")
	}
	if username != "alice" {
		t.Errorf("expected username alice, got %q", username)
	}
}

func TestGetUsernameFromContext_Missing(t *testing.T) {
	if _, ok := GetUsernameFromContext(context.Background()); ok {
		t.Error("expected missing username to report ok=false")
	}
}

func TestGetUsernameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameCtxKey, 42)
	if _, ok := GetUsernameFromContext(ctx); ok {
		t.Error("expected wrong-typed value to report ok=false")
	}
}

func TestGetRoleFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, "ADMIN")

	role, ok := GetRoleFromContext(ctx)
	if !ok {
		t.Fatal("expected role to be present in context")
	}
	if role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q", role)
	}
}
