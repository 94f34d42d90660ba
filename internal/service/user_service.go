package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/enyelsequeira/gym-be/internal/apperror"
	"github.com/enyelsequeira/gym-be/internal/domain"
	"github.com/enyelsequeira/gym-be/internal/repository"
	"github.com/enyelsequeira/gym-be/internal/security"
)

// UserView is the outward shape of a user. It structurally cannot carry
// the credential: redaction happens by construction, not by filtering.
type UserView struct {
	ID            uint       `json:"id"`
	Username      string     `json:"username"`
	Name          string     `json:"name"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Type          string     `json:"type"`
	Height        *float64   `json:"height,omitempty"`
	Weight        *float64   `json:"weight,omitempty"`
	TargetWeight  *float64   `json:"targetWeight,omitempty"`
	Country       *string    `json:"country,omitempty"`
	City          *string    `json:"city,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Occupation    *string    `json:"occupation,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Gender        *string    `json:"gender,omitempty"`
	ActivityLevel *string    `json:"activityLevel,omitempty"`
	FirstLogin    bool       `json:"firstLogin"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func NewUserView(u *domain.User) UserView {
	return UserView{
		ID:            u.ID,
		Username:      u.Username,
		Name:          u.Name,
		LastName:      u.LastName,
		Email:         u.Email,
		Type:          u.Type,
		Height:        u.Height,
		Weight:        u.Weight,
		TargetWeight:  u.TargetWeight,
		Country:       u.Country,
		City:          u.City,
		Phone:         u.Phone,
		Occupation:    u.Occupation,
		DateOfBirth:   u.DateOfBirth,
		Gender:        u.Gender,
		ActivityLevel: u.ActivityLevel,
		FirstLogin:    u.FirstLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type CreateUserInput struct {
	Username      string
	Name          string
	LastName      string
	Password      string
	Email         string
	Type          string
	DateOfBirth   *time.Time
	Gender        *string
	ActivityLevel *string
}

type UpdateUserInput struct {
	Name          *string
	LastName      *string
	Email         *string
	Height        *float64
	Weight        *float64
	TargetWeight  *float64
	Country       *string
	City          *string
	Phone         *string
	Occupation    *string
	DateOfBirth   *time.Time
	Gender        *string
	ActivityLevel *string
}

type UserService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserService(users repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a user. The existence pre-check only improves the
// common-case error; the unique constraint underneath is what actually
// guarantees no duplicate lands.
func (s *UserService) Create(in CreateUserInput) (UserView, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return UserView{}, err
	}
	if exists {
		return UserView{}, apperror.Conflict("User already exists")
	}

	hashed, err := security.HashPassword(in.Password)
	if err != nil {
		return UserView{}, err
	}
	u := &domain.User{
		Username:      in.Username,
		Name:          in.Name,
		LastName:      in.LastName,
		Password:      hashed,
		Email:         in.Email,
		Type:          in.Type,
		DateOfBirth:   in.DateOfBirth,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
		FirstLogin:    true,
	}
	if u.Type == "" {
		u.Type = domain.UserTypeUser
	}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return UserView{}, apperror.Conflict("User already exists")
		}
		return UserView{}, err
	}
	s.logger.Info("user created", "user_id", u.ID, "username", u.Username)
	return NewUserView(u), nil
}

func (s *UserService) GetByID(id uint) (UserView, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserView{}, apperror.NotFound("User Not found")
		}
		return UserView{}, err
	}
	return NewUserView(u), nil
}

// List runs the filtered, sorted, paginated query and maps every row to
// the redacted view.
func (s *UserService) List(opts repository.ListOptions) (repository.PageResult[UserView], error) {
	page, err := s.users.ListPaged(opts)
	if err != nil {
		return repository.PageResult[UserView]{}, err
	}
	views := make([]UserView, len(page.Items))
	for i := range page.Items {
		views[i] = NewUserView(&page.Items[i])
	}
	return repository.PageResult[UserView]{
		Items:      views,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *UserService) Update(id uint, in UpdateUserInput) (UserView, error) {
	fields := map[string]any{}
	setString := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setFloat := func(col string, v *float64) {
		if v != nil {
			fields[col] = *v
		}
	}
	setString("name", in.Name)
	setString("last_name", in.LastName)
	setString("email", in.Email)
	setFloat("height", in.Height)
	setFloat("weight", in.Weight)
	setFloat("target_weight", in.TargetWeight)
	setString("country", in.Country)
	setString("city", in.City)
	setString("phone", in.Phone)
	setString("occupation", in.Occupation)
	setString("gender", in.Gender)
	setString("activity_level", in.ActivityLevel)
	if in.DateOfBirth != nil {
		fields["date_of_birth"] = *in.DateOfBirth
	}

	u, err := s.users.UpdateProfile(id, fields)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return UserView{}, apperror.NotFound("User Not found")
		case errors.Is(err, repository.ErrUserAlreadyExists):
			return UserView{}, apperror.Conflict("User already exists")
		}
		return UserView{}, err
	}
	return NewUserView(u), nil
}
