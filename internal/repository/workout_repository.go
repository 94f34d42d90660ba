package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/enyelsequeira/gym-be/internal/domain"
)

var ErrWorkoutPlanNotFound = errors.New("workout plan not found")

var workoutListSpec = ListSpec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":        "id",
		"name":      "name",
		"goal":      "goal",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
	Filters: map[string]FilterField{
		"search":     {Op: FilterSearch, Columns: []string{"name", "description"}},
		"goal":       {Op: FilterEquals, Columns: []string{"goal"}},
		"difficulty": {Op: FilterEquals, Columns: []string{"difficulty"}},
		"isActive":   {Op: FilterEquals, Columns: []string{"is_active"}},
		"userId":     {Op: FilterEquals, Columns: []string{"user_id"}},
	},
}

type WorkoutRepository interface {
	CreatePlan(plan *domain.WorkoutPlan) error
	FindPlanByID(id uint) (*domain.WorkoutPlan, error)
	ListPlansPaged(opts ListOptions) (PageResult[domain.WorkoutPlan], error)
	CreateExercises(exercises []domain.Exercise) error
	ExistingExerciseIDs(ids []uint) (map[uint]bool, error)
}

type GormWorkoutRepository struct{ db *gorm.DB }

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &GormWorkoutRepository{db: db}
}

// CreatePlan persists the plan with its nested days and exercises in a
// single transaction. A failure on any row rolls back the whole graph.
func (r *GormWorkoutRepository) CreatePlan(plan *domain.WorkoutPlan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		days := plan.WorkoutDays
		plan.WorkoutDays = nil
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range days {
			day := &days[i]
			exercises := day.Exercises
			day.Exercises = nil
			day.WorkoutPlanID = plan.ID
			if err := tx.Create(day).Error; err != nil {
				return err
			}
			for j := range exercises {
				exercises[j].WorkoutDayID = day.ID
				// associations are resolved after commit via FindPlanByID
				exercises[j].Exercise = domain.Exercise{}
			}
			if len(exercises) > 0 {
				if err := tx.Create(&exercises).Error; err != nil {
					return err
				}
			}
			day.Exercises = exercises
		}
		plan.WorkoutDays = days
		return nil
	})
}

func (r *GormWorkoutRepository) FindPlanByID(id uint) (*domain.WorkoutPlan, error) {
	var plan domain.WorkoutPlan
	err := r.db.
		Preload("WorkoutDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number asc")
		}).
		Preload("WorkoutDays.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("WorkoutDays.Exercises.Exercise").
		First(&plan, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWorkoutPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *GormWorkoutRepository) ListPlansPaged(opts ListOptions) (PageResult[domain.WorkoutPlan], error) {
	return ListPage[domain.WorkoutPlan](r.db, workoutListSpec, opts)
}

func (r *GormWorkoutRepository) CreateExercises(exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&exercises).Error
	})
}

// ExistingExerciseIDs reports which of the given library ids are
// present, so callers can reject references to unknown exercises before
// opening the create transaction.
func (r *GormWorkoutRepository) ExistingExerciseIDs(ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}
	var found []uint
	if err := r.db.Model(&domain.Exercise{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
