package repo

import (
	"errors"

	"gorm.io/gorm"

	"teadiary/internal/domain"
)

type TeaTypeRepo struct{ db *gorm.DB }

func NewTeaTypeRepo(db *gorm.DB) *TeaTypeRepo { return &TeaTypeRepo{db: db} }

func (r *TeaTypeRepo) Create(t *domain.TeaType) error { return r.db.Create(t).Error }

func (r *TeaTypeRepo) FindByID(id string) (*domain.TeaType, error) {
	var t domain.TeaType
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeaTypeRepo) List() ([]domain.TeaType, error) {
	var types []domain.TeaType
	err := r.db.Order("name").Find(&types).Error
	return types, err
}

func (r *TeaTypeRepo) Exists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.TeaType{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *TeaTypeRepo) Update(t *domain.TeaType) (int64, error) {
	res := r.db.Model(&domain.TeaType{}).Where("id = ?", t.ID).Updates(map[string]any{
		"name":        t.Name,
		"description": t.Description,
	})
	return res.RowsAffected, res.Error
}

// Delete removes the type and detaches referencing teas. Teas keep a nullable
// reference, so deletion must not cascade to them.
func (r *TeaTypeRepo) Delete(id string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Tea{}).
			Where("tea_type_id = ?", id).
			Update("tea_type_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.TeaType{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
