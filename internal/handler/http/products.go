// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/internal/utils"
	"github.com/MKhiriev/go-catalog-api/internal/validators"
	"github.com/MKhiriev/go-catalog-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	products, cached, err := h.services.ProductService.GetAllProducts(ctx)
	if err != nil {
		log.Err(err).Msg("listing products failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.ProductListResponse{Products: products, Cached: cached}, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	product, _, err := h.services.ProductService.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		log.Err(err).Int64("product_id", id).Msg("fetching product failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var product models.Product
	if err := utils.ReadJSON(r, &product); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if product.Name == "" || product.Price == 0 {
		writeError(w, http.StatusBadRequest, "Name and price are required")
		return
	}
	product.Name = validators.SanitizeText(product.Name)
	product.Description = validators.SanitizeText(product.Description)
	if err := h.productValidator.Validate(ctx, product); err != nil {
		log.Err(err).Msg("product validation failed")
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	created, err := h.services.ProductService.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Msg("creating product failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	var update models.ProductUpdate
	if err := utils.ReadJSON(r, &update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if update.Name != nil {
		sanitized := validators.SanitizeText(*update.Name)
		update.Name = &sanitized
	}
	if update.Description != nil {
		sanitized := validators.SanitizeText(*update.Description)
		update.Description = &sanitized
	}
	if err := h.productValidator.Validate(ctx, update); err != nil {
		log.Err(err).Msg("product update validation failed")
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	updated, err := h.services.ProductService.UpdateProduct(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		log.Err(err).Int64("product_id", id).Msg("updating product failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	if err := h.services.ProductService.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		log.Err(err).Int64("product_id", id).Msg("deleting product failed")
		h.recordInternalError(r)
		writeInternalError(w)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Product deleted successfully"}, http.StatusOK) //nolint:errcheck
}
