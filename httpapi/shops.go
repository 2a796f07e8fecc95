/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suparena/shopstore/handlers"
)

func (a *API) createShop(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateShopRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Logo = fileUpload(r, "logo")

	shop, err := a.svc.CreateShop(r.Context(), identityFrom(r.Context()), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, shop)
}

func (a *API) getShop(w http.ResponseWriter, r *http.Request) {
	shop, err := a.svc.GetShop(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, shop)
}

func (a *API) listShops(w http.ResponseWriter, r *http.Request) {
	shops, err := a.svc.ListShops(r.Context(), identityFrom(r.Context()))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, shops)
}

func (a *API) updateShop(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateShopRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Logo = fileUpload(r, "logo")

	shop, err := a.svc.UpdateShop(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, shop)
}

func (a *API) deleteShop(w http.ResponseWriter, r *http.Request) {
	if err := a.svc.DeleteShop(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID")); err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) exportBackup(w http.ResponseWriter, r *http.Request) {
	url, err := a.svc.ExportShopBackup(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
