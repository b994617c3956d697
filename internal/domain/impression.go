package domain

import "time"

// Impression is a user's free-text review of one tea.
type Impression struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	TeaID     string    `gorm:"size:36;not null" json:"teaId"`
	Tea       *Tea      `gorm:"foreignKey:TeaID" json:"-"`
	UserID    string    `gorm:"size:36;not null" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Impression) TableName() string { return "impressions" }

type ImpressionRepository interface {
	Create(i *Impression) error
	FindByID(id string) (*Impression, error)
	List() ([]Impression, error)
	Update(i *Impression) (int64, error)
	Exists(id string) (bool, error)
	Delete(id string) (int64, error)
}
