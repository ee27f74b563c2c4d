package api

import (
	"net/http"
	"strconv"

	"catalog/internal/service"
	"catalog/pkg/serrors"
)

type catalogHandler struct {
	catalogs service.Catalogs
}

type catalogRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type catalogUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *catalogHandler) create(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	catalog, err := h.catalogs.Create(r.Context(), service.CatalogInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, newCatalogResponse(catalog))
}

func (h *catalogHandler) get(w http.ResponseWriter, r *http.Request) {
	aggregate, err := h.catalogs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newCatalogProductsResponse(aggregate))
}

// pageQuery reads the page and limit query parameters. Absent values fall
// back to the first page with the default limit.
func pageQuery(r *http.Request) (page, limit uint, err error) {
	page, err = uintQuery(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}

	limit, err = uintQuery(r, "limit", 0)
	if err != nil {
		return 0, 0, err
	}

	return page, limit, nil
}

func uintQuery(r *http.Request, name string, fallback uint) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrValidation, err, "invalid %s parameter", name)
	}

	return uint(value), nil
}

func (h *catalogHandler) list(w http.ResponseWriter, r *http.Request) {
	page, limit, err := pageQuery(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	result, err := h.catalogs.List(r.Context(), page, limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newCatalogPageResponse(result))
}

func (h *catalogHandler) update(w http.ResponseWriter, r *http.Request) {
	var req catalogUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	catalog, err := h.catalogs.Update(r.Context(), r.PathValue("id"), service.CatalogUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newCatalogResponse(catalog))
}

func (h *catalogHandler) delete(w http.ResponseWriter, r *http.Request) {
	aggregate, err := h.catalogs.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newCatalogProductsResponse(aggregate))
}
