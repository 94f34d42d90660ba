package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/http/middleware"
	"github.com/enyelsequeira/gym-be/internal/http/response"
	"github.com/enyelsequeira/gym-be/internal/security"
	"github.com/enyelsequeira/gym-be/internal/service"
)

type AuthHandler struct {
	auth    *service.AuthService
	cookies *security.CookieManager
}

func NewAuthHandler(auth *service.AuthService, cookies *security.CookieManager) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperror.BadRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	user, token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.cookies.SetSessionCookie(w, token)
	response.JSON(w, http.StatusOK, user, "You have been logged in")
}

// Logout invalidates every session of the target user. The path id must
// match the authenticated identity; acting on someone else is forbidden.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Error(w, apperror.Unauthorized("Please login to continue"))
		return
	}

	targetID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apperror.BadRequest("invalid user id"))
		return
	}
	if uint(targetID) != auth.User.ID {
		response.Error(w, apperror.Forbidden("You can only logout from your own account"))
		return
	}

	if _, err := h.auth.Logout(auth.User.ID); err != nil {
		response.Error(w, err)
		return
	}
	h.cookies.ClearSessionCookie(w)
	response.JSON(w, http.StatusOK, nil, "You have been logged out")
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Error(w, apperror.Unauthorized("Please login to continue"))
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperror.BadRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	user, err := h.auth.ChangePassword(auth.User.ID, auth.User.Username, req.Username, req.Password, req.NewPassword)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user, "Password has been updated")
}
