package domain

type TeaType struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:191;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`

	Teas []Tea `gorm:"foreignKey:TeaTypeID" json:"-"`
}

func (TeaType) TableName() string { return "tea_types" }

type TeaTypeRepository interface {
	Create(t *TeaType) error
	FindByID(id string) (*TeaType, error)
	List() ([]TeaType, error)
	Exists(id string) (bool, error)
	Update(t *TeaType) (int64, error)
	// Delete removes the type and nulls out the tea_type_id of referencing
	// teas in the same transaction.
	Delete(id string) (int64, error)
}
