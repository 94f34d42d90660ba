package domain

import "time"

const (
	UserTypeAdmin = "ADMIN"
	UserTypeUser  = "USER"
)

const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

const (
	ActivitySedentary  = "SEDENTARY"
	ActivityLight      = "LIGHT"
	ActivityModerate   = "MODERATE"
	ActivityVeryActive = "VERY_ACTIVE"
	ActivityExtreme    = "EXTREME"
)

// User is the account row. Password holds the salted scrypt credential
// and is excluded from every JSON rendering; outward-facing code goes
// through service.UserView on top of that.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	LastName      string     `gorm:"size:100;not null" json:"lastName"`
	Password      string     `gorm:"size:255;not null" json:"-"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Type          string     `gorm:"size:16;not null;default:USER" json:"type"`
	Height        *float64   `json:"height,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	TargetWeight  *float64   `json:"targetWeight,omitempty"`
	Country       *string    `gorm:"size:100" json:"country,omitempty"`
	City          *string    `gorm:"size:100" json:"city,omitempty"`
	Phone         *string    `gorm:"size:50" json:"phone,omitempty"`
	Occupation    *string    `gorm:"size:100" json:"occupation,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Gender        *string    `gorm:"size:16" json:"gender,omitempty"`
	ActivityLevel *string    `gorm:"size:16" json:"activityLevel,omitempty"`
	FirstLogin    bool       `gorm:"not null;default:true" json:"firstLogin"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (u *User) IsAdmin() bool { return u.Type == UserTypeAdmin }

func ValidUserType(t string) bool {
	return t == UserTypeAdmin || t == UserTypeUser
}

func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func ValidActivityLevel(a string) bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive, ActivityExtreme:
		return true
	}
	return false
}
