/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTgUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.svc.RegisterTgUser(ctx, TgLogin{
		TgID:      42,
		FirstName: "Анна",
		Username:  "anna",
		AuthDate:  1756713600,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.TgID)
	assert.Equal(t, user.UUID, user.UserUUID, "account is self-owned")

	tgUser, err := env.svc.GetTgUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, user.UUID, tgUser.UUID, "both records share one uuid")
}

func TestRegisterTgUserRepeatedLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.RegisterTgUser(ctx, TgLogin{TgID: 42, Username: "anna"})
	require.NoError(t, err)

	again, err := env.svc.RegisterTgUser(ctx, TgLogin{TgID: 42, Username: "anna-renamed"})
	require.NoError(t, err)
	assert.Equal(t, first.UUID, again.UUID, "a known Telegram id maps to the existing account")
	assert.Equal(t, 2, env.store.Count(), "no extra records on repeated login")
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.svc.RegisterTgUser(ctx, TgLogin{TgID: 42, Username: "anna"})
	require.NoError(t, err)

	phone := "+79990001122"
	actor := Identity{UserUUID: user.UUID, OwnerUUID: user.UUID}
	updated, err := env.svc.UpdateUser(ctx, actor, user.UUID, UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, int64(42), updated.TgID, "telegram fields stay intact")
}

func TestTokenBlacklist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	blacklisted, err := env.svc.IsTokenBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, env.svc.BlacklistToken(ctx, "jti-1"))

	blacklisted, err = env.svc.IsTokenBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Revoking twice is fine.
	require.NoError(t, env.svc.BlacklistToken(ctx, "jti-1"))

	assert.Equal(t, 0, env.store.Count(), "token records go to the dedicated table")
	assert.Equal(t, 1, env.tokens.Count())
}
