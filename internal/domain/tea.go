package domain

import "time"

// Tea is one entry of the diary. Quantity is in grams. YearCollection holds the
// flexible harvest date ("2024-05-01", "2024" or "лето 2024").
type Tea struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	Name           string    `gorm:"size:191;not null" json:"name"`
	TeaTypeID      *string   `gorm:"size:36" json:"teaTypeId"`
	TeaType        *TeaType  `gorm:"foreignKey:TeaTypeID" json:"teaType,omitempty"`
	YearCollection *string   `gorm:"size:32" json:"yearCollection"`
	Quantity       int       `json:"quantity"`
	Price          *float64  `gorm:"type:numeric(10,2)" json:"price"`
	LinkPurchase   *string   `gorm:"size:512" json:"linkPurchase"`
	WouldBuyAgain  *bool     `json:"wouldBuyAgain"`
	Description    *string   `gorm:"type:text" json:"description"`
	UserID         string    `gorm:"size:36;not null" json:"userId"`
	LinkToPhoto    *string   `gorm:"size:512" json:"linkToPhoto"`

	Impressions []Impression `gorm:"foreignKey:TeaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Tea) TableName() string { return "teas" }

type TeaRepository interface {
	Create(t *Tea) error
	// FindByID loads the tea with its type resolved.
	FindByID(id string) (*Tea, error)
	List() ([]Tea, error)
	ListByUser(userID string) ([]Tea, error)
	Exists(id string) (bool, error)
	Update(t *Tea) (int64, error)
	Delete(id string) (int64, error)
}
