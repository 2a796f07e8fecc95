/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package handlers

import (
	"context"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/keys"
	"github.com/suparena/shopstore/objstore"
	"github.com/suparena/shopstore/storagemodels"
)

type CreateTemplateRequest struct {
	Title              string `validate:"required"`
	Description        string
	TemplateURL        string  `validate:"required,url"`
	ExclusiveOwnerUUID string  `validate:"omitempty,uuid"`
	Preview            *Upload `validate:"required"`
}

type UpdateTemplateRequest struct {
	Title              *string
	Description        *string
	TemplateURL        *string `validate:"omitempty,url"`
	ExclusiveOwnerUUID *string `validate:"omitempty,uuid"`
	Preview            *Upload
}

func (s *Service) uploadTemplatePreview(ctx context.Context, templateUUID string, preview *Upload) (string, error) {
	path, err := objstore.TemplatePreviewPath(objstore.PathAttrs{
		TemplateUUID: templateUUID,
		Ext:          preview.ext(),
	})
	if err != nil {
		return "", err
	}
	return s.Objects.Upload(ctx, path, preview.Body, preview.ContentType)
}

func (s *Service) CreateTemplate(ctx context.Context, actor Identity, req CreateTemplateRequest) (*storagemodels.Template, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	templateUUID := s.NewUUID()
	photoURL, err := s.uploadTemplatePreview(ctx, templateUUID, req.Preview)
	if err != nil {
		return nil, err
	}

	tpl := storagemodels.Template{
		EntityBase: storagemodels.EntityBase{
			UUID:       templateUUID,
			UserUUID:   actor.UserUUID,
			DateCreate: s.Now(),
			DateUpdate: s.Now(),
		},
		Title:              req.Title,
		Description:        req.Description,
		PhotoURL:           photoURL,
		TemplateURL:        req.TemplateURL,
		ExclusiveOwnerUUID: req.ExclusiveOwnerUUID,
	}

	if err := putNew(ctx, s, tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *Service) GetTemplate(ctx context.Context, templateUUID string) (*storagemodels.Template, error) {
	return getOne[storagemodels.Template](ctx, s, map[string]string{"uuid": templateUUID})
}

// ListTemplates returns the active templates visible to the caller:
// public ones plus any exclusive to the calling owner.
func (s *Service) ListTemplates(ctx context.Context, actor Identity) ([]storagemodels.Template, error) {
	all, err := listOf[storagemodels.Template](ctx, s, &datastore.Query{
		Partition:  "template",
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}

	visible := make([]storagemodels.Template, 0, len(all))
	for _, tpl := range all {
		if tpl.ExclusiveOwnerUUID == "" || tpl.ExclusiveOwnerUUID == actor.OwnerUUID {
			visible = append(visible, tpl)
		}
	}
	return visible, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, actor Identity, templateUUID string, req UpdateTemplateRequest) (*storagemodels.Template, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	payload := storagemodels.TemplateUpdate{
		Title:              req.Title,
		Description:        req.Description,
		TemplateURL:        req.TemplateURL,
		ExclusiveOwnerUUID: req.ExclusiveOwnerUUID,
	}

	if req.Preview == nil {
		if _, err := storagemodels.UpdateFields(payload); err != nil {
			return nil, err
		}
	} else {
		url, err := s.uploadTemplatePreview(ctx, templateUUID, req.Preview)
		if err != nil {
			return nil, err
		}
		payload.PhotoURL = &url
	}

	attrs := map[string]string{"uuid": templateUUID}
	old, err := applyUpdate(ctx, s, keys.KindTemplate, attrs, payload, actor.UserUUID, datastore.ReturnOld)
	if err != nil {
		return nil, err
	}

	// Preview paths are keyed by template uuid, so a same-extension
	// re-upload lands on the same object and there is nothing stale.
	if payload.PhotoURL != nil {
		if stale := stringAttr(old, "photo_url"); stale != "" && stale != *payload.PhotoURL {
			s.Objects.ForgetDelete(stale)
		}
	}
	return s.GetTemplate(ctx, templateUUID)
}

func (s *Service) DeleteTemplate(ctx context.Context, actor Identity, templateUUID string) error {
	key, err := keys.Make(keys.KindTemplate, map[string]string{"uuid": templateUUID})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindTemplate, key, actor.UserUUID)
}
