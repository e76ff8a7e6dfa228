package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	FullName  string    `gorm:"column:full_name" json:"full_name"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

// UserView is the trimmed shape returned by the auth endpoints.
type UserView struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (u *User) View() UserView {
	return UserView{Username: u.Username, FullName: u.FullName}
}
