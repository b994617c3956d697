package repo

import (
	"errors"

	"gorm.io/gorm"

	"teadiary/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *UserRepo) Exists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *UserRepo) Update(u *domain.User) (int64, error) {
	res := r.db.Model(&domain.User{}).Where("id = ?", u.ID).Updates(map[string]any{
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"middle_name":   u.MiddleName,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"avatar_id":     u.AvatarID,
	})
	return res.RowsAffected, res.Error
}

func (r *UserRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected, res.Error
}
