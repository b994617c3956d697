package repo

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"teadiary/internal/domain"
)

// seedTeaTypes are the eight fixed rows every deployment starts with. The IDs
// are stable so existing teas keep their references across re-deploys.
var seedTeaTypes = []domain.TeaType{
	{ID: "11111111-1111-1111-1111-111111111111", Name: "Зеленый"},
	{ID: "22222222-2222-2222-2222-222222222222", Name: "Черный"},
	{ID: "33333333-3333-3333-3333-333333333333", Name: "Красный"},
	{ID: "44444444-4444-4444-4444-444444444444", Name: "Улун"},
	{ID: "55555555-5555-5555-5555-555555555555", Name: "Шу пуэр"},
	{ID: "66666666-6666-6666-6666-666666666666", Name: "Шен пуэр"},
	{ID: "77777777-7777-7777-7777-777777777777", Name: "Габа"},
	{ID: "88888888-8888-8888-8888-888888888888", Name: "Белый"},
}

// Seed inserts the fixed tea types (idempotent) and, when adminEmail is set,
// promotes that account to Admin. Promotion is the only way a role is ever
// assigned.
func Seed(db *gorm.DB, adminEmail string, l *zap.Logger) error {
	for _, tt := range seedTeaTypes {
		var existing domain.TeaType
		err := db.First(&existing, "id = ?", tt.ID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&tt).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	if adminEmail == "" {
		return nil
	}
	res := db.Model(&domain.User{}).
		Where("email = ?", adminEmail).
		Update("role", domain.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		l.Warn("admin account not found, promotion skipped", zap.String("email", adminEmail))
	} else {
		l.Info("admin account provisioned", zap.String("email", adminEmail))
	}
	return nil
}
