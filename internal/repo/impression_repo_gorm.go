package repo

import (
	"errors"

	"gorm.io/gorm"

	"teadiary/internal/domain"
)

type ImpressionRepo struct{ db *gorm.DB }

func NewImpressionRepo(db *gorm.DB) *ImpressionRepo { return &ImpressionRepo{db: db} }

func (r *ImpressionRepo) Create(i *domain.Impression) error { return r.db.Create(i).Error }

func (r *ImpressionRepo) FindByID(id string) (*domain.Impression, error) {
	var i domain.Impression
	err := r.db.First(&i, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ImpressionRepo) List() ([]domain.Impression, error) {
	var impressions []domain.Impression
	err := r.db.Order("created_at desc").Find(&impressions).Error
	return impressions, err
}

func (r *ImpressionRepo) Exists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Impression{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// Update replaces the text only; the tea and user references are immutable.
func (r *ImpressionRepo) Update(i *domain.Impression) (int64, error) {
	res := r.db.Model(&domain.Impression{}).
		Where("id = ?", i.ID).
		Update("text", i.Text)
	return res.RowsAffected, res.Error
}

func (r *ImpressionRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Impression{})
	return res.RowsAffected, res.Error
}
