// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GremahTech

package store

import (
	"strings"
	"testing"

	"github.com/gremahtech/agri-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "hash",
		Role:         "FARMER",
	}

	query, args, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 4)
	require.Equal(t, "alice", args[0])
	require.Equal(t, "a@x.com", args[1])
	require.Equal(t, "hash", args[2])
	require.Equal(t, "FARMER", args[3])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "created_at")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	assert.NotContains(t, query, "?")
}

func Test_buildSelectUserByUsernameQuery(t *testing.T) {
	query, args, err := buildSelectUserByUsernameQuery("alice")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "alice", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "username = $1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "role")
	require.Contains(t, q, "created_at")
}

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery("a@x.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "a@x.com", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "email = $1")
}

func Test_buildSelectAllUsersQuery(t *testing.T) {
	query, args, err := buildSelectAllUsersQuery()
	require.NoError(t, err)

	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from users")
	require.Contains(t, q, "order by user_id")
	for _, column := range userColumns {
		require.Contains(t, q, column)
	}
}

func Test_buildDeleteUserByIDQuery(t *testing.T) {
	query, args, err := buildDeleteUserByIDQuery(7)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(7), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from users")
	require.Contains(t, q, "user_id = $1")
}
