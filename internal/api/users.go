package api

import (
	"net/http"
	"time"

	"catalog/internal/service"
	"catalog/pkg/serrors"
)

type userHandler struct {
	users service.Users
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	user, err := h.users.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (h *userHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	result, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt,
		User:      newUserResponse(result.User),
	})
}

func (h *userHandler) refresh(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing session"))

		return
	}

	result, err := h.users.Refresh(r.Context(), session)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     result.Token,
		ExpiresAt: result.Session.ExpiresAt,
		User:      newUserResponse(result.User),
	})
}

func (h *userHandler) logout(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing session"))

		return
	}

	if err := h.users.Logout(r.Context(), session.ID); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *userHandler) me(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing session"))

		return
	}

	user, err := h.users.UserBySession(r.Context(), session)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *userHandler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, r, serrors.With(serrors.ErrValidation, "missing token parameter"))

		return
	}

	if err := h.users.VerifyEmail(r.Context(), token); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
