package domain

import "time"

const (
	DifficultyBeginner     = "BEGINNER"
	DifficultyIntermediate = "INTERMEDIATE"
	DifficultyAdvanced     = "ADVANCED"
)

const (
	GoalStrength    = "STRENGTH"
	GoalHypertrophy = "HYPERTROPHY"
	GoalEndurance   = "ENDURANCE"
	GoalWeightLoss  = "WEIGHT_LOSS"
	GoalGeneral     = "GENERAL"
)

const (
	MuscleChest     = "CHEST"
	MuscleBack      = "BACK"
	MuscleLegs      = "LEGS"
	MuscleShoulders = "SHOULDERS"
	MuscleArms      = "ARMS"
	MuscleCore      = "CORE"
	MuscleFullBody  = "FULL_BODY"
	MuscleCardio    = "CARDIO"
)

type WorkoutPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	Difficulty  *string   `gorm:"size:16" json:"difficulty,omitempty"`
	Goal        string    `gorm:"size:16;not null;default:GENERAL" json:"goal"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	WorkoutDays []WorkoutDay `gorm:"constraint:OnDelete:CASCADE" json:"workoutDays,omitempty"`
}

type WorkoutDay struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	WorkoutPlanID uint      `gorm:"index;not null" json:"workoutPlanId"`
	DayNumber     int       `gorm:"not null" json:"dayNumber"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Exercises []WorkoutExercise `gorm:"foreignKey:WorkoutDayID;constraint:OnDelete:CASCADE" json:"exercises,omitempty"`
}

// Exercise is a library entry, shared across plans. Custom entries keep
// a pointer to the admin who created them.
type Exercise struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  *string   `json:"description,omitempty"`
	MuscleGroup  string    `gorm:"size:16;not null" json:"muscleGroup"`
	Equipment    *string   `gorm:"size:100" json:"equipment,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	VideoURL     *string   `gorm:"size:255" json:"videoUrl,omitempty"`
	IsCustom     bool      `gorm:"not null;default:false" json:"isCustom"`
	CreatedByID  *uint     `json:"createdById,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type WorkoutExercise struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WorkoutDayID uint      `gorm:"index;not null" json:"workoutDayId"`
	ExerciseID   uint      `gorm:"index;not null" json:"exerciseId"`
	OrderIndex   int       `gorm:"not null" json:"orderIndex"`
	Sets         int       `gorm:"not null;default:3" json:"sets"`
	Reps         *int      `json:"reps,omitempty"`
	Weight       *float64  `json:"weight,omitempty"`
	Duration     *int      `json:"duration,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Exercise Exercise `json:"exercise,omitempty"`
}

func ValidMuscleGroup(m string) bool {
	switch m {
	case MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleCore, MuscleFullBody, MuscleCardio:
		return true
	}
	return false
}

func ValidDifficulty(d string) bool {
	return d == DifficultyBeginner || d == DifficultyIntermediate || d == DifficultyAdvanced
}

func ValidGoal(g string) bool {
	switch g {
	case GoalStrength, GoalHypertrophy, GoalEndurance, GoalWeightLoss, GoalGeneral:
		return true
	}
	return false
}
