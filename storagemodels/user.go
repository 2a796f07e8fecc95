/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"strconv"

	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/registry"
)

func init() {
	registry.RegisterDecoder("user_", decoderFor[User]())
	registry.RegisterDecoder("tg_user", decoderFor[TgUser]())
}

// User is a shop owner account created from a Telegram login.
type User struct {
	EntityBase

	TgID        int64  `dynamodbav:"tg_id" json:"tg_id"`
	TgFirstName string `dynamodbav:"tg_first_name" json:"tg_first_name"`
	TgLastName  string `dynamodbav:"tg_last_name,omitempty" json:"tg_last_name,omitempty"`
	TgUsername  string `dynamodbav:"tg_username" json:"tg_username"`
	TgPhotoURL  string `dynamodbav:"tg_photo_url,omitempty" json:"tg_photo_url,omitempty"`
	TgAuthDate  int64  `dynamodbav:"tg_auth_date" json:"tg_auth_date"`

	FirstName  string `dynamodbav:"first_name,omitempty" json:"first_name,omitempty"`
	LastName   string `dynamodbav:"last_name,omitempty" json:"last_name,omitempty"`
	Patronymic string `dynamodbav:"patronymic,omitempty" json:"patronymic,omitempty"`
	Birthdate  string `dynamodbav:"birthdate,omitempty" json:"birthdate,omitempty"`
	Phone      string `dynamodbav:"phone,omitempty" json:"phone,omitempty"`
	Email      string `dynamodbav:"email,omitempty" json:"email,omitempty"`
}

func (u User) Kind() keys.Kind { return keys.KindUser }

func (u User) KeyAttrs() map[string]string {
	return map[string]string{"uuid": u.UUID}
}

func (u User) Validate() error {
	if err := u.EntityBase.validate("user_"); err != nil {
		return err
	}
	if u.TgID == 0 {
		return errors.NewSchemaMismatchError("user_", "tg_id")
	}
	return nil
}

// UserUpdate is the sparse update shape for a user's contact details.
type UserUpdate struct {
	FirstName  *string `dynamodbav:"first_name,omitempty"`
	LastName   *string `dynamodbav:"last_name,omitempty"`
	Patronymic *string `dynamodbav:"patronymic,omitempty"`
	Birthdate  *string `dynamodbav:"birthdate,omitempty"`
	Phone      *string `dynamodbav:"phone,omitempty"`
	Email      *string `dynamodbav:"email,omitempty"`
}

// TgUser mirrors the raw Telegram identity, keyed by the numeric Telegram
// id so logins can find the account before a user UUID exists.
type TgUser struct {
	EntityBase

	TgID      int64  `dynamodbav:"id_" json:"id"`
	FirstName string `dynamodbav:"first_name" json:"first_name"`
	LastName  string `dynamodbav:"last_name,omitempty" json:"last_name,omitempty"`
	Username  string `dynamodbav:"username" json:"username"`
	PhotoURL  string `dynamodbav:"photo_url,omitempty" json:"photo_url,omitempty"`
}

func (u TgUser) Kind() keys.Kind { return keys.KindTgUser }

func (u TgUser) KeyAttrs() map[string]string {
	return map[string]string{"tg_id": strconv.FormatInt(u.TgID, 10)}
}

func (u TgUser) Validate() error {
	if err := u.EntityBase.validate("tg_user"); err != nil {
		return err
	}
	if u.TgID == 0 {
		return errors.NewSchemaMismatchError("tg_user", "id_")
	}
	return nil
}

// Token is a blacklisted JWT id. It lives in the dedicated token table,
// which shares the general table's key shape.
type Token struct {
	JTI        string `dynamodbav:"jti" json:"jti"`
	DateCreate string `dynamodbav:"date_create" json:"date_create"`
}

func (t Token) Kind() keys.Kind { return keys.KindToken }

func (t Token) KeyAttrs() map[string]string {
	return map[string]string{"jti": t.JTI}
}

func (t Token) Validate() error {
	if t.JTI == "" {
		return errors.NewSchemaMismatchError("token", "jti")
	}
	return nil
}
