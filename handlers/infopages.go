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

type CreateRubricRequest struct {
	Title       string `validate:"required"`
	Description string
	HexColor    string `validate:"omitempty,hexcolor"`
	SortIndex   int
	Image       *Upload
}

type UpdateRubricRequest struct {
	Title       *string
	Description *string
	HexColor    *string `validate:"omitempty,hexcolor"`
	SortIndex   *int
	Image       *Upload
}

type CreatePostRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	RubricUUID  string `validate:"required"`
	Images      []*Upload
}

type UpdatePostRequest struct {
	Title       *string
	Description *string
	RubricUUID  *string

	// ImageURLs is the set of already-stored images the post keeps;
	// freshly uploaded Images are appended.
	ImageURLs *[]string
	Images    []*Upload
}

func (s *Service) uploadRubricImage(ctx context.Context, actor Identity, shopUUID string, image *Upload) (string, error) {
	path, err := objstore.RubricImagePath(objstore.PathAttrs{
		OwnerUUID: actor.OwnerUUID,
		ShopUUID:  shopUUID,
		Ext:       image.ext(),
	})
	if err != nil {
		return "", err
	}
	return s.Objects.Upload(ctx, path, image.Body, image.ContentType)
}

func (s *Service) uploadPostImages(ctx context.Context, actor Identity, shopUUID, postUUID string, images []*Upload) ([]string, error) {
	urls := make([]string, 0, len(images))
	for _, image := range images {
		path, err := objstore.PostImagePath(objstore.PathAttrs{
			OwnerUUID: actor.OwnerUUID,
			ShopUUID:  shopUUID,
			PostUUID:  postUUID,
			Ext:       image.ext(),
		})
		if err != nil {
			return nil, err
		}
		url, err := s.Objects.Upload(ctx, path, image.Body, image.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *Service) CreateRubric(ctx context.Context, actor Identity, shopUUID string, req CreateRubricRequest) (*storagemodels.InfopagesRubric, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	rubric := storagemodels.InfopagesRubric{
		ShopScopedBase: storagemodels.ShopScopedBase{
			OwnedBase: storagemodels.OwnedBase{
				EntityBase: storagemodels.EntityBase{
					UUID:       s.NewUUID(),
					UserUUID:   actor.UserUUID,
					DateCreate: s.Now(),
					DateUpdate: s.Now(),
				},
				OwnerUUID: actor.OwnerUUID,
			},
			ShopUUID: shopUUID,
		},
		Title:       req.Title,
		Description: req.Description,
		HexColor:    req.HexColor,
		SortIndex:   req.SortIndex,
	}

	if req.Image != nil {
		url, err := s.uploadRubricImage(ctx, actor, shopUUID, req.Image)
		if err != nil {
			return nil, err
		}
		rubric.ImageURL = url
	}

	if err := putNew(ctx, s, rubric); err != nil {
		return nil, err
	}
	return &rubric, nil
}

func (s *Service) GetRubric(ctx context.Context, shopUUID, rubricUUID string) (*storagemodels.InfopagesRubric, error) {
	return getOne[storagemodels.InfopagesRubric](ctx, s, map[string]string{
		"shop_uuid":   shopUUID,
		"rubric_uuid": rubricUUID,
	})
}

func (s *Service) ListRubrics(ctx context.Context, shopUUID string) ([]storagemodels.InfopagesRubric, error) {
	prefix, err := keys.Prefix(keys.KindInfopagesRubric, map[string]string{"shop_uuid": shopUUID})
	if err != nil {
		return nil, err
	}
	return listOf[storagemodels.InfopagesRubric](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
}

func (s *Service) UpdateRubric(ctx context.Context, actor Identity, shopUUID, rubricUUID string, req UpdateRubricRequest) (*storagemodels.InfopagesRubric, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	payload := storagemodels.InfopagesRubricUpdate{
		Title:       req.Title,
		Description: req.Description,
		HexColor:    req.HexColor,
		SortIndex:   req.SortIndex,
	}

	// Validate the changeset before any upload so a no-op request
	// leaves object storage untouched.
	if req.Image == nil {
		if _, err := storagemodels.UpdateFields(payload); err != nil {
			return nil, err
		}
	} else {
		url, err := s.uploadRubricImage(ctx, actor, shopUUID, req.Image)
		if err != nil {
			return nil, err
		}
		payload.ImageURL = &url
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "rubric_uuid": rubricUUID}
	old, err := applyUpdate(ctx, s, keys.KindInfopagesRubric, attrs, payload, actor.UserUUID, datastore.ReturnOld)
	if err != nil {
		return nil, err
	}

	if payload.ImageURL != nil {
		if stale := stringAttr(old, "image_url"); stale != "" {
			s.Objects.ForgetDelete(stale)
		}
	}
	return s.GetRubric(ctx, shopUUID, rubricUUID)
}

func (s *Service) DeleteRubric(ctx context.Context, actor Identity, shopUUID, rubricUUID string) error {
	key, err := keys.Make(keys.KindInfopagesRubric, map[string]string{
		"shop_uuid":   shopUUID,
		"rubric_uuid": rubricUUID,
	})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindInfopagesRubric, key, actor.UserUUID)
}

func (s *Service) CreatePost(ctx context.Context, actor Identity, shopUUID string, req CreatePostRequest) (*storagemodels.InfopagesPost, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	postUUID := s.NewUUID()
	post := storagemodels.InfopagesPost{
		ShopScopedBase: storagemodels.ShopScopedBase{
			OwnedBase: storagemodels.OwnedBase{
				EntityBase: storagemodels.EntityBase{
					UUID:       postUUID,
					UserUUID:   actor.UserUUID,
					DateCreate: s.Now(),
					DateUpdate: s.Now(),
				},
				OwnerUUID: actor.OwnerUUID,
			},
			ShopUUID: shopUUID,
		},
		Title:       req.Title,
		Description: req.Description,
		RubricUUID:  req.RubricUUID,
	}

	if len(req.Images) > 0 {
		urls, err := s.uploadPostImages(ctx, actor, shopUUID, postUUID, req.Images)
		if err != nil {
			return nil, err
		}
		post.ImageURLs = urls
	}

	if err := putNew(ctx, s, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Service) GetPost(ctx context.Context, shopUUID, postUUID string) (*storagemodels.InfopagesPost, error) {
	return getOne[storagemodels.InfopagesPost](ctx, s, map[string]string{
		"shop_uuid": shopUUID,
		"post_uuid": postUUID,
	})
}

func (s *Service) ListPosts(ctx context.Context, shopUUID string) ([]storagemodels.InfopagesPost, error) {
	prefix, err := keys.Prefix(keys.KindInfopagesPost, map[string]string{"shop_uuid": shopUUID})
	if err != nil {
		return nil, err
	}
	return listOf[storagemodels.InfopagesPost](ctx, s, &datastore.Query{
		Partition:  prefix.Partition,
		SortPrefix: prefix.Sort,
		ActiveOnly: true,
	})
}

func (s *Service) UpdatePost(ctx context.Context, actor Identity, shopUUID, postUUID string, req UpdatePostRequest) (*storagemodels.InfopagesPost, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	payload := storagemodels.InfopagesPostUpdate{
		Title:       req.Title,
		Description: req.Description,
		RubricUUID:  req.RubricUUID,
	}

	if req.ImageURLs != nil {
		current, err := s.GetPost(ctx, shopUUID, postUUID)
		if err != nil {
			return nil, err
		}
		if err := s.Objects.DeleteDiff(ctx, current.ImageURLs, *req.ImageURLs); err != nil {
			return nil, err
		}
		payload.ImageURLs = *req.ImageURLs
	}

	if len(req.Images) > 0 {
		urls, err := s.uploadPostImages(ctx, actor, shopUUID, postUUID, req.Images)
		if err != nil {
			return nil, err
		}
		payload.ImageURLs = append(payload.ImageURLs, urls...)
	}

	attrs := map[string]string{"shop_uuid": shopUUID, "post_uuid": postUUID}
	if _, err := applyUpdate(ctx, s, keys.KindInfopagesPost, attrs, payload, actor.UserUUID, datastore.ReturnNone); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, shopUUID, postUUID)
}

func (s *Service) DeletePost(ctx context.Context, actor Identity, shopUUID, postUUID string) error {
	key, err := keys.Make(keys.KindInfopagesPost, map[string]string{
		"shop_uuid": shopUUID,
		"post_uuid": postUUID,
	})
	if err != nil {
		return err
	}
	return datastore.Deactivate(ctx, s.Store, keys.KindInfopagesPost, key, actor.UserUUID)
}
