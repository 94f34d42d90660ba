package service

import (
	"errors"
	"io"
	"log/slog"

	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/repository"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubUserRepository struct {
	createFn         func(u *domain.User) error
	findByIDFn       func(id uint) (*domain.User, error)
	findByUsernameFn func(username string) (*domain.User, error)
	existsFn         func(username, email string) (bool, error)
	updatePasswordFn func(userID uint, hashed string) error
	updateProfileFn  func(userID uint, fields map[string]any) (*domain.User, error)
	listPagedFn      func(opts repository.ListOptions) (repository.PageResult[domain.User], error)
}

func (s *stubUserRepository) Create(u *domain.User) error {
	if s.createFn == nil {
		return errors.New("not implemented")
	}
	return s.createFn(u)
}

func (s *stubUserRepository) FindByID(id uint) (*domain.User, error) {
	if s.findByIDFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.findByIDFn(id)
}

func (s *stubUserRepository) FindByUsername(username string) (*domain.User, error) {
	if s.findByUsernameFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.findByUsernameFn(username)
}

func (s *stubUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	if s.existsFn == nil {
		return false, errors.New("not implemented")
	}
	return s.existsFn(username, email)
}

func (s *stubUserRepository) UpdatePassword(userID uint, hashed string) error {
	if s.updatePasswordFn == nil {
		return errors.New("not implemented")
	}
	return s.updatePasswordFn(userID, hashed)
}

func (s *stubUserRepository) UpdateProfile(userID uint, fields map[string]any) (*domain.User, error) {
	if s.updateProfileFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.updateProfileFn(userID, fields)
}

func (s *stubUserRepository) ListPaged(opts repository.ListOptions) (repository.PageResult[domain.User], error) {
	if s.listPagedFn == nil {
		return repository.PageResult[domain.User]{}, errors.New("not implemented")
	}
	return s.listPagedFn(opts)
}

type stubSessionRepository struct {
	createFn        func(token string, userID uint) (*domain.Session, error)
	findByIDFn      func(id string) (*domain.Session, error)
	invalidateFn    func(userID uint) (int64, error)
	deleteExpiredFn func() (int64, error)
}

func (s *stubSessionRepository) Create(token string, userID uint) (*domain.Session, error) {
	if s.createFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.createFn(token, userID)
}

func (s *stubSessionRepository) FindByID(id string) (*domain.Session, error) {
	if s.findByIDFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.findByIDFn(id)
}

func (s *stubSessionRepository) InvalidateAllForUser(userID uint) (int64, error) {
	if s.invalidateFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.invalidateFn(userID)
}

func (s *stubSessionRepository) DeleteExpired() (int64, error) {
	if s.deleteExpiredFn == nil {
		return 0, errors.New("not implemented")
	}
	return s.deleteExpiredFn()
}

type stubWorkoutRepository struct {
	createPlanFn      func(plan *domain.WorkoutPlan) error
	findPlanFn        func(id uint) (*domain.WorkoutPlan, error)
	listPlansFn       func(opts repository.ListOptions) (repository.PageResult[domain.WorkoutPlan], error)
	createExercisesFn func(exercises []domain.Exercise) error
	existingIDsFn     func(ids []uint) (map[uint]bool, error)
}

func (s *stubWorkoutRepository) CreatePlan(plan *domain.WorkoutPlan) error {
	if s.createPlanFn == nil {
		return errors.New("not implemented")
	}
	return s.createPlanFn(plan)
}

func (s *stubWorkoutRepository) FindPlanByID(id uint) (*domain.WorkoutPlan, error) {
	if s.findPlanFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.findPlanFn(id)
}

func (s *stubWorkoutRepository) ListPlansPaged(opts repository.ListOptions) (repository.PageResult[domain.WorkoutPlan], error) {
	if s.listPlansFn == nil {
		return repository.PageResult[domain.WorkoutPlan]{}, errors.New("not implemented")
	}
	return s.listPlansFn(opts)
}

func (s *stubWorkoutRepository) CreateExercises(exercises []domain.Exercise) error {
	if s.createExercisesFn == nil {
		return errors.New("not implemented")
	}
	return s.createExercisesFn(exercises)
}

func (s *stubWorkoutRepository) ExistingExerciseIDs(ids []uint) (map[uint]bool, error) {
	if s.existingIDsFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.existingIDsFn(ids)
}
