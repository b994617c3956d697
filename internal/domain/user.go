package domain

import "time"

// RoleAdmin is the only role the API ever checks. Registration never assigns a
// role; promotion is a provisioning step at startup (see repo.Seed).
const RoleAdmin = "Admin"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string    `gorm:"size:50;not null" json:"firstName"`
	LastName     *string   `gorm:"size:50" json:"lastName"`
	MiddleName   *string   `gorm:"size:50" json:"middleName"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	Role         string    `gorm:"size:16" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	AvatarID     *string   `gorm:"size:191" json:"avatarId"`

	Teas []Tea `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	List() ([]User, error)
	Exists(id string) (bool, error)
	Update(u *User) (int64, error)
	Delete(id string) (int64, error)
}
