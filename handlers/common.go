/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/objstore"
	"github.com/suparena/shopstore/storagemodels"
)

// Identity is the acting user, supplied by the auth middleware. OwnerUUID
// is the shop owner the request operates under; for owners acting on their
// own shops the two are equal.
type Identity struct {
	UserUUID  string
	OwnerUUID string
}

// Upload is a file received with a request.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

func (u *Upload) ext() string {
	parts := strings.Split(u.Filename, ".")
	return parts[len(parts)-1]
}

// Service carries the process-wide collaborators into every entity
// operation. Constructed once at startup and shared; it holds no
// per-request state.
type Service struct {
	Store   datastore.Store
	Tokens  datastore.Store
	Objects *objstore.Storage
	Log     *zap.Logger

	// Now and NewUUID are swappable for tests.
	Now     func() string
	NewUUID func() string

	TrialDays int

	validate *validator.Validate
}

// New wires a Service with production defaults.
func New(store, tokens datastore.Store, objects *objstore.Storage, log *zap.Logger, trialDays int) *Service {
	return &Service{
		Store:     store,
		Tokens:    tokens,
		Objects:   objects,
		Log:       log.Named("handlers"),
		Now:       storagemodels.Now,
		NewUUID:   uuid.NewString,
		TrialDays: trialDays,
		validate:  validator.New(),
	}
}

func (s *Service) check(req interface{}) error {
	return s.validate.Struct(req)
}

// getOne fetches and decodes one record. An absent record is NotFound.
func getOne[T storagemodels.Record](ctx context.Context, s *Service, attrs map[string]string) (*T, error) {
	var zero T
	key, err := keys.Make(zero.Kind(), attrs)
	if err != nil {
		return nil, err
	}
	item, err := s.Store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.NewNotFoundError(string(zero.Kind()), key.Partition, key.Sort)
	}
	return storagemodels.Decode[T](item)
}

// putNew inserts a freshly assembled record, refusing to overwrite an
// existing key.
func putNew(ctx context.Context, s *Service, rec storagemodels.Record) error {
	key, item, err := storagemodels.Encode(rec)
	if err != nil {
		return err
	}
	err = s.Store.Put(ctx, key, item, &datastore.Condition{MustNotExist: true})
	if errors.IsConditionFailed(err) {
		return errors.NewAlreadyExistsError(string(rec.Kind()), key.Partition, key.Sort)
	}
	return err
}

// listOf runs q and decodes every result to T.
func listOf[T storagemodels.Record](ctx context.Context, s *Service, q *datastore.Query) ([]T, error) {
	items, err := s.Store.QueryPaged(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		rec, err := storagemodels.Decode[T](item)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

// applyUpdate marshals a sparse payload, stamps the actor, and applies it
// to the identified record. A missing record is NotFound. The returned
// item follows mode.
func applyUpdate(ctx context.Context, s *Service, kind keys.Kind, attrs map[string]string, payload interface{}, actorUUID string, mode datastore.ReturnMode) (storagemodels.Item, error) {
	fields, err := storagemodels.UpdateFields(payload)
	if err != nil {
		return nil, err
	}
	fields = storagemodels.Stamp(fields, actorUUID)

	key, err := keys.Make(kind, attrs)
	if err != nil {
		return nil, err
	}

	item, err := s.Store.Update(ctx, key, fields, &datastore.Condition{MustExist: true}, mode)
	if errors.IsConditionFailed(err) {
		return nil, errors.NewNotFoundError(string(kind), key.Partition, key.Sort)
	}
	return item, err
}

// stringAttr pulls a string attribute out of a raw item, empty when absent.
func stringAttr(item storagemodels.Item, name string) string {
	if item == nil {
		return ""
	}
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

// stringListAttr pulls a string list attribute out of a raw item.
func stringListAttr(item storagemodels.Item, name string) []string {
	list, ok := item[name].(*types.AttributeValueMemberL)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list.Value))
	for _, v := range list.Value {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			out = append(out, s.Value)
		}
	}
	return out
}
