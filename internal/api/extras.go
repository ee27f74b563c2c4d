package api

import (
	"net/http"

	"catalog/internal/service"
)

type extraHandler struct {
	extras service.Extras
}

type extraRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type extraUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
}

func (h *extraHandler) create(w http.ResponseWriter, r *http.Request) {
	var req extraRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	extra, err := h.extras.Create(r.Context(), service.ExtraInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, newExtraResponse(extra))
}

func (h *extraHandler) get(w http.ResponseWriter, r *http.Request) {
	extra, err := h.extras.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newExtraResponse(extra))
}

func (h *extraHandler) list(w http.ResponseWriter, r *http.Request) {
	extras, err := h.extras.List(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newExtraResponses(extras))
}

func (h *extraHandler) update(w http.ResponseWriter, r *http.Request) {
	var req extraUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	extra, err := h.extras.Update(r.Context(), r.PathValue("id"), service.ExtraUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newExtraResponse(extra))
}

func (h *extraHandler) delete(w http.ResponseWriter, r *http.Request) {
	extra, err := h.extras.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newExtraResponse(extra))
}
