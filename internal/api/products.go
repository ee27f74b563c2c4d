package api

import (
	"net/http"

	"catalog/internal/service"
)

type productHandler struct {
	products service.Products
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Kind        string   `json:"kind"`
	ExtraIDs    []string `json:"extraIds"`
}

type productUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	Kind        *string   `json:"kind"`
	ExtraIDs    *[]string `json:"extraIds"`
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	product, err := h.products.Create(r.Context(), r.PathValue("catalogID"), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Kind:        req.Kind,
		ExtraIDs:    req.ExtraIDs,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, newProductResponse(product))
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), r.PathValue("catalogID"), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newProductResponse(product))
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	var req productUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	product, err := h.products.Update(r.Context(), r.PathValue("catalogID"), r.PathValue("id"), service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Kind:        req.Kind,
		ExtraIDs:    req.ExtraIDs,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newProductResponse(product))
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Delete(r.Context(), r.PathValue("catalogID"), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newProductResponse(product))
}
