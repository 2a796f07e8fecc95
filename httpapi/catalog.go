/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/suparena/shopstore/handlers"
)

func (a *API) createCategory(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateCategoryRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Image = fileUpload(r, "image")

	category, err := a.svc.CreateCategory(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, category)
}

func (a *API) getCategory(w http.ResponseWriter, r *http.Request) {
	category, err := a.svc.GetCategory(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "categoryUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, category)
}

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.svc.ListCategories(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, categories)
}

func (a *API) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateCategoryRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Image = fileUpload(r, "image")

	category, err := a.svc.UpdateCategory(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "categoryUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, category)
}

func (a *API) deleteCategory(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteCategory(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "categoryUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) createProduct(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateProductRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Image = fileUpload(r, "image")

	product, err := a.svc.CreateProduct(r.Context(), identityFrom(r.Context()), chi.URLParam(r, "shopUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, product)
}

func (a *API) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := a.svc.GetProduct(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, product)
}

func (a *API) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.svc.ListProducts(r.Context(), chi.URLParam(r, "shopUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, products)
}

func (a *API) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateProductRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Image = fileUpload(r, "image")

	product, err := a.svc.UpdateProduct(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, product)
}

func (a *API) deleteProduct(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteProduct(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) createVariant(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateVariantRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Images = fileUploads(r, "images")

	variant, err := a.svc.CreateVariant(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, variant)
}

func (a *API) getVariant(w http.ResponseWriter, r *http.Request) {
	variant, err := a.svc.GetVariant(r.Context(),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), chi.URLParam(r, "variantUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, variant)
}

func (a *API) listVariants(w http.ResponseWriter, r *http.Request) {
	variants, err := a.svc.ListVariants(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, variants)
}

func (a *API) updateVariant(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateVariantRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}
	req.Images = fileUploads(r, "images")

	variant, err := a.svc.UpdateVariant(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), chi.URLParam(r, "variantUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, variant)
}

func (a *API) deleteVariant(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteVariant(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), chi.URLParam(r, "variantUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}

func (a *API) createExtraKit(w http.ResponseWriter, r *http.Request) {
	var req handlers.CreateExtraKitRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	kit, err := a.svc.CreateExtraKit(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, kit)
}

func (a *API) getExtraKit(w http.ResponseWriter, r *http.Request) {
	kit, err := a.svc.GetExtraKit(r.Context(),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), chi.URLParam(r, "extraKitUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, kit)
}

func (a *API) listExtraKits(w http.ResponseWriter, r *http.Request) {
	kits, err := a.svc.ListExtraKits(r.Context(), chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, kits)
}

func (a *API) updateExtraKit(w http.ResponseWriter, r *http.Request) {
	var req handlers.UpdateExtraKitRequest
	if err := decodeRequest(r, &req); err != nil {
		a.writeError(w, err)
		return
	}

	kit, err := a.svc.UpdateExtraKit(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), chi.URLParam(r, "extraKitUUID"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, kit)
}

func (a *API) deleteExtraKit(w http.ResponseWriter, r *http.Request) {
	err := a.svc.DeleteExtraKit(r.Context(), identityFrom(r.Context()),
		chi.URLParam(r, "shopUUID"), chi.URLParam(r, "productUUID"), chi.URLParam(r, "extraKitUUID"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusNoContent, nil)
}
