/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// BlacklistToken voids a JWT by recording its id in the token table.
// Blacklisting the same id twice is a no-op.
func (s *Service) BlacklistToken(ctx context.Context, jti string) error {
	if jti == "" {
		return errors.NewMissingIdentifierError("token", "jti")
	}

	token := storagemodels.Token{JTI: jti, DateCreate: s.Now()}
	key, item, err := storagemodels.Encode(token)
	if err != nil {
		return err
	}
	return s.Tokens.Put(ctx, key, item, nil)
}

// IsTokenBlacklisted reports whether the JWT id has been voided.
func (s *Service) IsTokenBlacklisted(ctx context.Context, jti string) (bool, error) {
	key, err := keys.Make(keys.KindToken, map[string]string{"jti": jti})
	if err != nil {
		return false, err
	}
	item, err := s.Tokens.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return item != nil, nil
}
