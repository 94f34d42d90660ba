package handler

import (
	"fmt"
	"time"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/domain"
)

// Request DTOs validate themselves before any handler logic runs.
// Failures produce a BadRequest with per-field messages.

type fieldErrors map[string]string

func (fe fieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return apperror.BadRequest("Validation failed").WithDetails(fe)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	fe := fieldErrors{}
	if l := len(r.Username); l < 3 || l > 50 {
		fe["username"] = "must be between 3 and 50 characters"
	}
	if len(r.Password) < 8 {
		fe["password"] = "must be at least 8 characters"
	}
	return fe.err()
}

type UpdatePasswordRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

func (r UpdatePasswordRequest) Validate() error {
	fe := fieldErrors{}
	if r.Username == "" {
		fe["username"] = "is required"
	}
	if len(r.Password) < 3 {
		fe["password"] = "must be at least 3 characters"
	}
	if len(r.NewPassword) < 8 {
		fe["newPassword"] = "must be at least 8 characters"
	}
	return fe.err()
}

type CreateUserRequest struct {
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	LastName      string  `json:"lastName"`
	Password      string  `json:"password"`
	Email         string  `json:"email"`
	Type          string  `json:"type"`
	DateOfBirth   *string `json:"dateOfBirth"`
	Gender        *string `json:"gender"`
	ActivityLevel *string `json:"activityLevel"`
}

func (r CreateUserRequest) Validate() error {
	fe := fieldErrors{}
	if l := len(r.Username); l < 3 || l > 50 {
		fe["username"] = "must be between 3 and 50 characters"
	}
	if l := len(r.Name); l < 1 || l > 100 {
		fe["name"] = "must be between 1 and 100 characters"
	}
	if l := len(r.LastName); l < 1 || l > 100 {
		fe["lastName"] = "must be between 1 and 100 characters"
	}
	if len(r.Password) < 8 {
		fe["password"] = "must be at least 8 characters"
	}
	if r.Email == "" {
		fe["email"] = "is required"
	}
	if r.Type != "" && !domain.ValidUserType(r.Type) {
		fe["type"] = "must be ADMIN or USER"
	}
	if r.Gender != nil && !domain.ValidGender(*r.Gender) {
		fe["gender"] = "must be MALE, FEMALE or OTHER"
	}
	if r.ActivityLevel != nil && !domain.ValidActivityLevel(*r.ActivityLevel) {
		fe["activityLevel"] = "must be a valid activity level"
	}
	if r.DateOfBirth != nil {
		if _, err := parseDate(*r.DateOfBirth); err != nil {
			fe["dateOfBirth"] = "must be an RFC 3339 or YYYY-MM-DD date"
		}
	}
	return fe.err()
}

type UpdateUserRequest struct {
	Name          *string  `json:"name"`
	LastName      *string  `json:"lastName"`
	Email         *string  `json:"email"`
	Height        *float64 `json:"height"`
	Weight        *float64 `json:"weight"`
	TargetWeight  *float64 `json:"targetWeight"`
	Country       *string  `json:"country"`
	City          *string  `json:"city"`
	Phone         *string  `json:"phone"`
	Occupation    *string  `json:"occupation"`
	DateOfBirth   *string  `json:"dateOfBirth"`
	Gender        *string  `json:"gender"`
	ActivityLevel *string  `json:"activityLevel"`
}

func (r UpdateUserRequest) Validate() error {
	fe := fieldErrors{}
	if r.Name != nil && (len(*r.Name) < 1 || len(*r.Name) > 100) {
		fe["name"] = "must be between 1 and 100 characters"
	}
	if r.LastName != nil && (len(*r.LastName) < 1 || len(*r.LastName) > 100) {
		fe["lastName"] = "must be between 1 and 100 characters"
	}
	if r.Email != nil && *r.Email == "" {
		fe["email"] = "must not be empty"
	}
	if r.Gender != nil && !domain.ValidGender(*r.Gender) {
		fe["gender"] = "must be MALE, FEMALE or OTHER"
	}
	if r.ActivityLevel != nil && !domain.ValidActivityLevel(*r.ActivityLevel) {
		fe["activityLevel"] = "must be a valid activity level"
	}
	if r.DateOfBirth != nil {
		if _, err := parseDate(*r.DateOfBirth); err != nil {
			fe["dateOfBirth"] = "must be an RFC 3339 or YYYY-MM-DD date"
		}
	}
	return fe.err()
}

type WorkoutExerciseRequest struct {
	ExerciseID uint     `json:"exerciseId"`
	OrderIndex int      `json:"orderIndex"`
	Sets       int      `json:"sets"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	Duration   *int     `json:"duration"`
	Notes      *string  `json:"notes"`
}

type WorkoutDayRequest struct {
	DayNumber int                      `json:"dayNumber"`
	Name      string                   `json:"name"`
	Notes     *string                  `json:"notes"`
	Exercises []WorkoutExerciseRequest `json:"exercises"`
}

type CreateWorkoutRequest struct {
	UserID      uint                `json:"userId"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Difficulty  *string             `json:"difficulty"`
	Goal        string              `json:"goal"`
	IsActive    *bool               `json:"isActive"`
	WorkoutDays []WorkoutDayRequest `json:"workoutDays"`
}

func (r CreateWorkoutRequest) Validate() error {
	fe := fieldErrors{}
	if r.UserID == 0 {
		fe["userId"] = "is required"
	}
	if l := len(r.Name); l < 1 || l > 100 {
		fe["name"] = "must be between 1 and 100 characters"
	}
	if r.Difficulty != nil && !domain.ValidDifficulty(*r.Difficulty) {
		fe["difficulty"] = "must be BEGINNER, INTERMEDIATE or ADVANCED"
	}
	if r.Goal != "" && !domain.ValidGoal(r.Goal) {
		fe["goal"] = "must be a valid goal"
	}
	for i, day := range r.WorkoutDays {
		if day.DayNumber < 1 || day.DayNumber > 7 {
			fe[fmt.Sprintf("workoutDays.%d.dayNumber", i)] = "must be between 1 and 7"
		}
		if l := len(day.Name); l < 1 || l > 100 {
			fe[fmt.Sprintf("workoutDays.%d.name", i)] = "must be between 1 and 100 characters"
		}
		for j, ex := range day.Exercises {
			if ex.ExerciseID == 0 {
				fe[fmt.Sprintf("workoutDays.%d.exercises.%d.exerciseId", i, j)] = "is required"
			}
			if ex.OrderIndex < 0 {
				fe[fmt.Sprintf("workoutDays.%d.exercises.%d.orderIndex", i, j)] = "must be >= 0"
			}
		}
	}
	return fe.err()
}

type CreateExerciseRequest struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	MuscleGroup  string  `json:"muscleGroup"`
	Equipment    *string `json:"equipment"`
	Instructions *string `json:"instructions"`
	VideoURL     *string `json:"videoUrl"`
}

func (r CreateExerciseRequest) Validate() error {
	fe := fieldErrors{}
	if l := len(r.Name); l < 1 || l > 100 {
		fe["name"] = "must be between 1 and 100 characters"
	}
	if !domain.ValidMuscleGroup(r.MuscleGroup) {
		fe["muscleGroup"] = "must be a valid muscle group"
	}
	return fe.err()
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
