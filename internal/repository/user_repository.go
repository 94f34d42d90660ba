package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/enyelsequeira/gym-be/internal/domain"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// userListSpec enumerates every sortable column and filterable field of
// the users list endpoint. Anything outside these maps never reaches SQL.
var userListSpec = ListSpec{
	DefaultSort: "id",
	SortColumns: map[string]string{
		"id":           "id",
		"username":     "username",
		"name":         "name",
		"lastName":     "last_name",
		"email":        "email",
		"createdAt":    "created_at",
		"updatedAt":    "updated_at",
		"height":       "height",
		"weight":       "weight",
		"targetWeight": "target_weight",
		"country":      "country",
		"city":         "city",
		"dateOfBirth":  "date_of_birth",
	},
	Filters: map[string]FilterField{
		"search":        {Op: FilterSearch, Columns: []string{"username", "name", "last_name", "email"}},
		"type":          {Op: FilterEquals, Columns: []string{"type"}},
		"gender":        {Op: FilterEquals, Columns: []string{"gender"}},
		"activityLevel": {Op: FilterEquals, Columns: []string{"activity_level"}},
		"firstLogin":    {Op: FilterEquals, Columns: []string{"first_login"}},
	},
}

type UserRepository interface {
	Create(u *domain.User) error
	FindByID(id uint) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	UpdatePassword(userID uint, hashed string) error
	UpdateProfile(userID uint, fields map[string]any) (*domain.User, error)
	ListPaged(opts ListOptions) (PageResult[domain.User], error)
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts inside a transaction. The unique indexes on username
// and email are the authoritative duplicate guard; a violation comes
// back as ErrUserAlreadyExists regardless of any earlier existence check.
func (r *GormUserRepository) Create(u *domain.User) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) FindByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePassword swaps the credential and clears the first-login flag in
// one statement.
func (r *GormUserRepository) UpdatePassword(userID uint, hashed string) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password":    hashed,
		"first_login": false,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) UpdateProfile(userID uint, fields map[string]any) (*domain.User, error) {
	if len(fields) > 0 {
		res := r.db.Model(&domain.User{}).Where("id = ?", userID).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, ErrUserAlreadyExists
			}
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}
	return r.FindByID(userID)
}

func (r *GormUserRepository) ListPaged(opts ListOptions) (PageResult[domain.User], error) {
	return ListPage[domain.User](r.db, userListSpec, opts)
}
