/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package httpapi exposes the admin backend over HTTP. Routing is thin:
// every route decodes a request, calls one service operation, and maps
// the semantic error onto a status code.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/suparena/shopstore"
	"github.com/suparena/shopstore/handlers"
)

// API is the HTTP front of the service layer.
type API struct {
	svc *handlers.Service
	log *zap.Logger
}

// New builds the router.
func New(svc *handlers.Service, log *zap.Logger) *chi.Mux {
	a := &API{svc: svc, log: log.Named("http")}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(a.requestLogger)

	r.Get("/healthz", a.health)
	r.Get("/version", a.version)
	r.Post("/auth/telegram", a.registerTgUser)

	r.Group(func(r chi.Router) {
		r.Use(a.authenticate)

		r.Post("/auth/logout", a.logout)

		r.Route("/users/{userUUID}", func(r chi.Router) {
			r.Get("/", a.getUser)
			r.Patch("/", a.updateUser)
			r.Delete("/", a.deleteUser)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", a.listTemplates)
			r.Post("/", a.createTemplate)
			r.Route("/{templateUUID}", func(r chi.Router) {
				r.Get("/", a.getTemplate)
				r.Patch("/", a.updateTemplate)
				r.Delete("/", a.deleteTemplate)
			})
		})

		r.Route("/shops", func(r chi.Router) {
			r.Get("/", a.listShops)
			r.Post("/", a.createShop)

			r.Route("/{shopUUID}", func(r chi.Router) {
				r.Use(a.shopOwnerGuard)

				r.Get("/", a.getShop)
				r.Patch("/", a.updateShop)
				r.Delete("/", a.deleteShop)
				r.Post("/backup", a.exportBackup)

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", a.listCategories)
					r.Post("/", a.createCategory)
					r.Route("/{categoryUUID}", func(r chi.Router) {
						r.Get("/", a.getCategory)
						r.Patch("/", a.updateCategory)
						r.Delete("/", a.deleteCategory)
					})
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", a.listProducts)
					r.Post("/", a.createProduct)
					r.Route("/{productUUID}", func(r chi.Router) {
						r.Get("/", a.getProduct)
						r.Patch("/", a.updateProduct)
						r.Delete("/", a.deleteProduct)

						r.Route("/variants", func(r chi.Router) {
							r.Get("/", a.listVariants)
							r.Post("/", a.createVariant)
							r.Route("/{variantUUID}", func(r chi.Router) {
								r.Get("/", a.getVariant)
								r.Patch("/", a.updateVariant)
								r.Delete("/", a.deleteVariant)
							})
						})

						r.Route("/extra-kits", func(r chi.Router) {
							r.Get("/", a.listExtraKits)
							r.Post("/", a.createExtraKit)
							r.Route("/{extraKitUUID}", func(r chi.Router) {
								r.Get("/", a.getExtraKit)
								r.Patch("/", a.updateExtraKit)
								r.Delete("/", a.deleteExtraKit)
							})
						})
					})
				})

				r.Route("/delivery/self-pickups", func(r chi.Router) {
					r.Get("/", a.listSelfPickups)
					r.Post("/", a.createSelfPickup)
					r.Route("/{pickupUUID}", func(r chi.Router) {
						r.Get("/", a.getSelfPickup)
						r.Patch("/", a.updateSelfPickup)
						r.Delete("/", a.deleteSelfPickup)
					})
				})

				r.Route("/delivery/manuals", func(r chi.Router) {
					r.Get("/", a.listDeliveryManuals)
					r.Post("/", a.createDeliveryManual)
					r.Route("/{manualUUID}", func(r chi.Router) {
						r.Get("/", a.getDeliveryManual)
						r.Patch("/", a.updateDeliveryManual)
						r.Delete("/", a.deleteDeliveryManual)
					})
				})

				r.Route("/infopages/rubrics", func(r chi.Router) {
					r.Get("/", a.listRubrics)
					r.Post("/", a.createRubric)
					r.Route("/{rubricUUID}", func(r chi.Router) {
						r.Get("/", a.getRubric)
						r.Patch("/", a.updateRubric)
						r.Delete("/", a.deleteRubric)
					})
				})

				r.Route("/infopages/posts", func(r chi.Router) {
					r.Get("/", a.listPosts)
					r.Post("/", a.createPost)
					r.Route("/{postUUID}", func(r chi.Router) {
						r.Get("/", a.getPost)
						r.Patch("/", a.updatePost)
						r.Delete("/", a.deletePost)
					})
				})
			})
		})
	})

	return r
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, shopstore.GetVersionInfo())
}
