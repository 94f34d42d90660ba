package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/http/middleware"
	"github.com/enyelsequeira/gym-be/internal/http/response"
	"github.com/enyelsequeira/gym-be/internal/repository"
	"github.com/enyelsequeira/gym-be/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperror.BadRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	in := service.CreateUserInput{
		Username:      req.Username,
		Name:          req.Name,
		LastName:      req.LastName,
		Password:      req.Password,
		Email:         req.Email,
		Type:          req.Type,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err == nil {
			in.DateOfBirth = &dob
		}
	}

	user, err := h.users.Create(in)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, user, "User created successfully")
}

// List translates the raw query string into validated list options.
// Unknown filter keys never make it into the options map at all.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptionsFromQuery(r, []string{"search", "type", "gender", "activityLevel", "firstLogin"})
	if err != nil {
		response.Error(w, err)
		return
	}

	page, err := h.users.List(opts)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.List(w, page.Items, response.Page{
		Size:          page.PageSize,
		TotalElements: page.Total,
		TotalPages:    page.TotalPages,
		Number:        page.Page,
	})
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apperror.BadRequest("invalid user id"))
		return
	}
	user, err := h.users.GetByID(uint(id))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user, "OK")
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Error(w, apperror.Unauthorized("Please login to continue"))
		return
	}
	user, err := h.users.GetByID(auth.User.ID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user, "OK")
}

// Update modifies the caller's own profile.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Error(w, apperror.Unauthorized("Please login to continue"))
		return
	}
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apperror.BadRequest("invalid user id"))
		return
	}
	if uint(id) != auth.User.ID {
		response.Error(w, apperror.Forbidden("You can only update your own account"))
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperror.BadRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	in := service.UpdateUserInput{
		Name:          req.Name,
		LastName:      req.LastName,
		Email:         req.Email,
		Height:        req.Height,
		Weight:        req.Weight,
		TargetWeight:  req.TargetWeight,
		Country:       req.Country,
		City:          req.City,
		Phone:         req.Phone,
		Occupation:    req.Occupation,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err == nil {
			in.DateOfBirth = &dob
		}
	}

	user, err := h.users.Update(uint(id), in)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, user, "Resource updated successfully")
}

// listOptionsFromQuery parses pagination/sort params and picks up only
// the allowed filter keys. firstLogin/isActive arrive as booleans.
func listOptionsFromQuery(r *http.Request, filterKeys []string) (repository.ListOptions, error) {
	q := r.URL.Query()
	opts := repository.ListOptions{
		SortBy:        q.Get("sortBy"),
		SortDirection: q.Get("sortDirection"),
		Filters:       map[string]any{},
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return opts, apperror.BadRequest("Validation failed").
				WithDetails(fieldErrors{"page": "must be a positive integer"})
		}
		opts.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return opts, apperror.BadRequest("Validation failed").
				WithDetails(fieldErrors{"limit": "must be a positive integer"})
		}
		opts.PageSize = limit
	}

	for _, key := range filterKeys {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		switch key {
		case "firstLogin", "isActive":
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return opts, apperror.BadRequest("Validation failed").
					WithDetails(fieldErrors{key: "must be a boolean"})
			}
			opts.Filters[key] = b
		case "userId":
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return opts, apperror.BadRequest("Validation failed").
					WithDetails(fieldErrors{key: "must be a positive integer"})
			}
			opts.Filters[key] = uint(id)
		default:
			opts.Filters[key] = raw
		}
	}
	return opts, nil
}
