/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suparena/shopstore/handlers"
)

func (a *API) createSelfPickup(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateSelfPickupRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	pickup, err := a.svc.CreateSelfPickup(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, pickup)
}

func (a *API) getSelfPickup(w http.ResponseWriter, r *http.Request) {
	pickup, err := a.svc.GetSelfPickup(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "pickupUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, pickup)
}

func (a *API) listSelfPickups(w http.ResponseWriter, r *http.Request) {
	pickups, err := a.svc.ListSelfPickups(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, pickups)
}

func (a *API) updateSelfPickup(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateSelfPickupRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	pickup, err := a.svc.UpdateSelfPickup(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "pickupUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, pickup)
}

func (a *API) deleteSelfPickup(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteSelfPickup(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "pickupUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) createDeliveryManual(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateDeliveryManualRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	manual, err := a.svc.CreateDeliveryManual(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, manual)
}

func (a *API) getDeliveryManual(w http.ResponseWriter, r *http.Request) {
	manual, err := a.svc.GetDeliveryManual(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "manualUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, manual)
}

func (a *API) listDeliveryManuals(w http.ResponseWriter, r *http.Request) {
	manuals, err := a.svc.ListDeliveryManuals(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, manuals)
}

func (a *API) updateDeliveryManual(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateDeliveryManualRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	manual, err := a.svc.UpdateDeliveryManual(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "manualUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, manual)
}

func (a *API) deleteDeliveryManual(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteDeliveryManual(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "manualUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}
