package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/http/middleware"
	"github.com/enyelsequeira/gym-be/internal/http/response"
	"github.com/enyelsequeira/gym-be/internal/service"
)

type WorkoutHandler struct {
	workouts *service.WorkoutService
}

func NewWorkoutHandler(workouts *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apperror.BadRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	in := service.CreateWorkoutPlanInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Goal:        req.Goal,
		IsActive:    req.IsActive,
	}
	for _, day := range req.WorkoutDays {
		d := service.WorkoutDayInput{
			DayNumber: day.DayNumber,
			Name:      day.Name,
			Notes:     day.Notes,
		}
		for _, ex := range day.Exercises {
			d.Exercises = append(d.Exercises, service.WorkoutExerciseInput{
				ExerciseID: ex.ExerciseID,
				OrderIndex: ex.OrderIndex,
				Sets:       ex.Sets,
				Reps:       ex.Reps,
				Weight:     ex.Weight,
				Duration:   ex.Duration,
				Notes:      ex.Notes,
			})
		}
		in.WorkoutDays = append(in.WorkoutDays, d)
	}

	plan, err := h.workouts.CreatePlan(in)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, plan, "Workout plan created successfully")
}

func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.Error(w, apperror.BadRequest("invalid workout plan id"))
		return
	}
	plan, err := h.workouts.GetPlan(uint(id))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, plan, "OK")
}

func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, err := listOptionsFromQuery(r, []string{"search", "goal", "difficulty", "isActive", "userId"})
	if err != nil {
		response.Error(w, err)
		return
	}
	page, err := h.workouts.ListPlans(opts)
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

// CreateExercises bulk-creates library entries, attributed to the
// authenticated admin.
func (h *WorkoutHandler) CreateExercises(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFromContext(r.Context())
	if !ok {
		response.Error(w, apperror.Unauthorized("Please login to continue"))
		return
	}

	var reqs []CreateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.Error(w, apperror.BadRequest("invalid request body"))
		return
	}
	if len(reqs) == 0 {
		response.Error(w, apperror.BadRequest("at least one exercise is required"))
		return
	}
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			appErr := apperror.From(err)
			appErr.Details = map[string]any{"index": i, "fields": appErr.Details}
			response.Error(w, appErr)
			return
		}
	}

	inputs := make([]service.CreateExerciseInput, len(reqs))
	for i, req := range reqs {
		inputs[i] = service.CreateExerciseInput{
			Name:         req.Name,
			Description:  req.Description,
			MuscleGroup:  req.MuscleGroup,
			Equipment:    req.Equipment,
			Instructions: req.Instructions,
			VideoURL:     req.VideoURL,
		}
	}

	exercises, err := h.workouts.CreateExercises(auth.User.ID, inputs)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, exercises, "Exercises created successfully")
}
