package repo

import (
	"errors"

	"gorm.io/gorm"

	"teadiary/internal/domain"
)

type TeaRepo struct{ db *gorm.DB }

func NewTeaRepo(db *gorm.DB) *TeaRepo { return &TeaRepo{db: db} }

func (r *TeaRepo) Create(t *domain.Tea) error { return r.db.Create(t).Error }

func (r *TeaRepo) FindByID(id string) (*domain.Tea, error) {
	var t domain.Tea
	err := r.db.Preload("TeaType").First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeaRepo) List() ([]domain.Tea, error) {
	var teas []domain.Tea
	err := r.db.Preload("TeaType").Order("created_at desc").Find(&teas).Error
	return teas, err
}

func (r *TeaRepo) ListByUser(userID string) ([]domain.Tea, error) {
	var teas []domain.Tea
	err := r.db.Preload("TeaType").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&teas).Error
	return teas, err
}

func (r *TeaRepo) Exists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.Tea{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// Update replaces the mutable fields only. ID, created_at and user_id never
// change after creation.
func (r *TeaRepo) Update(t *domain.Tea) (int64, error) {
	res := r.db.Model(&domain.Tea{}).Where("id = ?", t.ID).Updates(map[string]any{
		"name":            t.Name,
		"tea_type_id":     t.TeaTypeID,
		"year_collection": t.YearCollection,
		"quantity":        t.Quantity,
		"price":           t.Price,
		"link_purchase":   t.LinkPurchase,
		"would_buy_again": t.WouldBuyAgain,
		"description":     t.Description,
		"link_to_photo":   t.LinkToPhoto,
	})
	return res.RowsAffected, res.Error
}

func (r *TeaRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Tea{})
	return res.RowsAffected, res.Error
}
