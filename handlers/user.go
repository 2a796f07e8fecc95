/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/storagemodels"
)

// TgLogin is the verified Telegram login payload.
type TgLogin struct {
	TgID      int64 `validate:"required"`
	FirstName string
	LastName  string
	Username  string
	PhotoURL  string
	AuthDate  int64
}

type UpdateUserRequest struct {
	FirstName  *string
	LastName   *string
	Patronymic *string
	Birthdate  *string
	Phone      *string
	Email      *string `validate:"omitempty,email"`
}

// RegisterTgUser records a Telegram identity and creates the matching
// account. Both records carry the same uuid so either lookup direction
// works. A repeated login for a known Telegram id returns the existing
// account unchanged.
func (s *Service) RegisterTgUser(ctx context.Context, login TgLogin) (*storagemodels.User, error) {
	if err := s.check(login); err != nil {
		return nil, err
	}

	if existing, err := s.GetTgUser(ctx, login.TgID); err == nil {
		return s.GetUser(ctx, existing.UUID)
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	userUUID := s.NewUUID()
	now := s.Now()

	tgUser := storagemodels.TgUser{
		EntityBase: storagemodels.EntityBase{
			UUID:       userUUID,
			UserUUID:   userUUID,
			DateCreate: now,
			DateUpdate: now,
		},
		TgID:      login.TgID,
		FirstName: login.FirstName,
		LastName:  login.LastName,
		Username:  login.Username,
		PhotoURL:  login.PhotoURL,
	}
	if err := putNew(ctx, s, tgUser); err != nil {
		return nil, err
	}

	user := storagemodels.User{
		EntityBase: storagemodels.EntityBase{
			UUID:       userUUID,
			UserUUID:   userUUID,
			DateCreate: now,
			DateUpdate: now,
		},
		TgID:        login.TgID,
		TgFirstName: login.FirstName,
		TgLastName:  login.LastName,
		TgUsername:  login.Username,
		TgPhotoURL:  login.PhotoURL,
		TgAuthDate:  login.AuthDate,
	}
	if err := putNew(ctx, s, user); err != nil {
		return nil, err
	}

	s.Log.Info("registered user",
		zap.String("user_uuid", userUUID),
		zap.Int64("tg_id", login.TgID))
	return &user, nil
}

func (s *Service) GetUser(ctx context.Context, userUUID string) (*storagemodels.User, error) {
	return getOne[storagemodels.User](ctx, s, map[string]string{"uuid": userUUID})
}

func (s *Service) GetTgUser(ctx context.Context, tgID int64) (*storagemodels.TgUser, error) {
	return getOne[storagemodels.TgUser](ctx, s, map[string]string{
		"tg_id": strconv.FormatInt(tgID, 10),
	})
}

func (s *Service) UpdateUser(ctx context.Context, actor Identity, userUUID string, req UpdateUserRequest) (*storagemodels.User, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	payload := storagemodels.UserUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		Birthdate:  req.Birthdate,
		Phone:      req.Phone,
		Email:      req.Email,
	}
	attrs := map[string]string{"uuid": userUUID}
	if _, err := applyUpdate(ctx, s, keys.KindUser, attrs, payload, actor.UserUUID, datastore.ReturnNone); err != nil {
		return nil, err
	}
	return s.GetUser(ctx, userUUID)
}

func (s *Service) DeleteUser(ctx context.Context, actor Identity, userUUID string) error {
	key, err := keys.Make(keys.KindUser, map[string]string{"uuid": userUUID})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindUser, key, actor.UserUUID)
}
