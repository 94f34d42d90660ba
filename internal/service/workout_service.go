package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/repository"
)

type WorkoutExerciseInput struct {
	ExerciseID uint
	OrderIndex int
	Sets       int
	Reps       *int
	Weight     *float64
	Duration   *int
	Notes      *string
}

type WorkoutDayInput struct {
	DayNumber int
	Name      string
	Notes     *string
	Exercises []WorkoutExerciseInput
}

type CreateWorkoutPlanInput struct {
	UserID      uint
	Name        string
	Description *string
	Difficulty  *string
	Goal        string
	IsActive    *bool
	WorkoutDays []WorkoutDayInput
}

type CreateExerciseInput struct {
	Name         string
	Description  *string
	MuscleGroup  string
	Equipment    *string
	Instructions *string
	VideoURL     *string
}

type WorkoutService struct {
	workouts repository.WorkoutRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

func NewWorkoutService(workouts repository.WorkoutRepository, users repository.UserRepository, logger *slog.Logger) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users, logger: logger}
}

// CreatePlan validates every referenced exercise and the target user,
// then persists the whole plan graph atomically.
func (s *WorkoutService) CreatePlan(in CreateWorkoutPlanInput) (*domain.WorkoutPlan, error) {
	ids := collectExerciseIDs(in.WorkoutDays)
	if len(ids) > 0 {
		existing, err := s.workouts.ExistingExerciseIDs(ids)
		if err != nil {
			return nil, err
		}
		var missing []string
		for _, id := range ids {
			if !existing[id] {
				missing = append(missing, fmt.Sprintf("%d", id))
			}
		}
		if len(missing) > 0 {
			return nil, apperror.NotFound(
				fmt.Sprintf("The following exercise IDs don't exist: %s", strings.Join(missing, ", ")))
		}
	}

	if _, err := s.users.FindByID(in.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("User with ID %d doesn't exist", in.UserID))
		}
		return nil, err
	}

	plan := &domain.WorkoutPlan{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		Difficulty:  in.Difficulty,
		Goal:        in.Goal,
		IsActive:    true,
	}
	if plan.Goal == "" {
		plan.Goal = domain.GoalGeneral
	}
	if in.IsActive != nil {
		plan.IsActive = *in.IsActive
	}
	for _, day := range in.WorkoutDays {
		d := domain.WorkoutDay{
			DayNumber: day.DayNumber,
			Name:      day.Name,
			Notes:     day.Notes,
		}
		for _, ex := range day.Exercises {
			sets := ex.Sets
			if sets < 1 {
				sets = 3
			}
			d.Exercises = append(d.Exercises, domain.WorkoutExercise{
				ExerciseID: ex.ExerciseID,
				OrderIndex: ex.OrderIndex,
				Sets:       sets,
				Reps:       ex.Reps,
				Weight:     ex.Weight,
				Duration:   ex.Duration,
				Notes:      ex.Notes,
			})
		}
		plan.WorkoutDays = append(plan.WorkoutDays, d)
	}

	if err := s.workouts.CreatePlan(plan); err != nil {
		return nil, err
	}
	s.logger.Info("workout plan created", "plan_id", plan.ID, "user_id", plan.UserID, "days", len(plan.WorkoutDays))
	return s.workouts.FindPlanByID(plan.ID)
}

func (s *WorkoutService) GetPlan(id uint) (*domain.WorkoutPlan, error) {
	plan, err := s.workouts.FindPlanByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkoutPlanNotFound) {
			return nil, apperror.NotFound("Workout plan not found")
		}
		return nil, err
	}
	return plan, nil
}

func (s *WorkoutService) ListPlans(opts repository.ListOptions) (repository.PageResult[domain.WorkoutPlan], error) {
	return s.workouts.ListPlansPaged(opts)
}

// CreateExercises bulk-inserts library entries, all attributed to the
// creating admin.
func (s *WorkoutService) CreateExercises(createdBy uint, inputs []CreateExerciseInput) ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, len(inputs))
	for i, in := range inputs {
		exercises[i] = domain.Exercise{
			Name:         in.Name,
			Description:  in.Description,
			MuscleGroup:  in.MuscleGroup,
			Equipment:    in.Equipment,
			Instructions: in.Instructions,
			VideoURL:     in.VideoURL,
			IsCustom:     true,
			CreatedByID:  &createdBy,
		}
	}
	if err := s.workouts.CreateExercises(exercises); err != nil {
		return nil, err
	}
	s.logger.Info("exercises created", "count", len(exercises), "created_by", createdBy)
	return exercises, nil
}

func collectExerciseIDs(days []WorkoutDayInput) []uint {
	seen := map[uint]bool{}
	for _, day := range days {
		for _, ex := range day.Exercises {
			seen[ex.ExerciseID] = true
		}
	}
	ids := make([]uint, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
