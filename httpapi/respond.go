/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/suparena/shopstore/errors"
)

type errorBody struct {
	Error string `json:"error"`
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps the semantic error taxonomy onto HTTP statuses.
func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validationErrs validator.ValidationErrors
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case errors.IsAlreadyExists(err) || errors.IsConditionFailed(err):
		status = http.StatusConflict
	case errors.IsIncorrectOwner(err):
		status = http.StatusForbidden
	case errors.IsNoUpdateData(err) || errors.IsMissingIdentifier(err) ||
		errors.IsSchemaMismatch(err) || stderrors.As(err, &validationErrs):
		status = http.StatusBadRequest
	case errors.IsStorageUnavailable(err):
		status = http.StatusInternalServerError
		a.log.Error("storage fault", zap.Error(err))
	}

	a.writeJSON(w, status, errorBody{Error: err.Error()})
}
