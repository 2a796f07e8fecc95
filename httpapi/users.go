/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suparena/shopstore/handlers"
)

func (a *API) registerTgUser(w http.ResponseWriter, r *http.Request) {
	var login handlers.TgLogin
	if err := decodeRequest(r, &login); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.svc.RegisterTgUser(r.Context(), login)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, user)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	jti := r.Header.Get(headerTokenJTI)
	if err := a.svc.BlacklistToken(r.Context(), jti); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.svc.GetUser(r.Context(), chi.URLParam(r, "userUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, user)
}

func (a *API) updateUser(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateUserRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.svc.UpdateUser(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "userUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, user)
}

func (a *API) deleteUser(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteUser(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "userUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateTemplateRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Preview = fileUpload(r, "preview")

	tpl, err := a.svc.CreateTemplate(r.Context(), identityFrom(r.Context()), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, tpl)
}

func (a *API) getTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := a.svc.GetTemplate(r.Context(), chi.URLParam(r, "templateUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, tpl)
}

func (a *API) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := a.svc.ListTemplates(r.Context(), identityFrom(r.Context()))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, templates)
}

func (a *API) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateTemplateRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Preview = fileUpload(r, "preview")

	tpl, err := a.svc.UpdateTemplate(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "templateUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, tpl)
}

func (a *API) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteTemplate(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "templateUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}
