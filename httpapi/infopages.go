/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suparena/shopstore/handlers"
)

func (a *API) createRubric(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateRubricRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Image = fileUpload(r, "image")

	rubric, err := a.svc.CreateRubric(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, rubric)
}

func (a *API) getRubric(w http.ResponseWriter, r *http.Request) {
	rubric, err := a.svc.GetRubric(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "rubricUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, rubric)
}

func (a *API) listRubrics(w http.ResponseWriter, r *http.Request) {
	rubrics, err := a.svc.ListRubrics(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, rubrics)
}

func (a *API) updateRubric(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateRubricRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Image = fileUpload(r, "image")

	rubric, err := a.svc.UpdateRubric(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "rubricUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, rubric)
}

func (a *API) deleteRubric(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteRubric(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "rubricUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) createPost(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreatePostRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Images = fileUploads(r, "images")

	post, err := a.svc.CreatePost(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, post)
}

func (a *API) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := a.svc.GetPost(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "postUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, post)
}

func (a *API) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.svc.ListPosts(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, posts)
}

func (a *API) updatePost(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdatePostRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Images = fileUploads(r, "images")

	post, err := a.svc.UpdatePost(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "postUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, post)
}

func (a *API) deletePost(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeletePost(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "postUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}
