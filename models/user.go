package models

import (
	"corrigo/tools"
	"time"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const USER_ROLE_WORKER = "worker"
const USER_ROLE_COMPANY = "company"

/************************************************
/**** MARK: USER STATUS ****/
/************************************************/
const USER_STATUS_AVAILABLE = 0
const USER_STATUS_BLOCKED = 2

// User representa uma conta no sistema.
// Workers corrigem respostas e acumulam saldo; companies sobem datasets.
type User struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null" json:"name" form:"name"`
	Email     string     `gorm:"not null;unique" json:"email" form:"email"`
	Password  string     `gorm:"not null" json:"password,omitempty" form:"password"`
	Role      string     `gorm:"not null;default:'worker'" json:"role" form:"role"`
	Status    int        `gorm:"default:0" json:"status" form:"status"`
	Balance   int64      `gorm:"not null;default:0" json:"balance"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (user User) MissingFields() string {
	if user.Name == "" {
		return "name"
	} else if user.Email == "" {
		return "email"
	} else if user.Password == "" {
		return "password"
	} else if tools.CheckPassword(user.Password) != "" {
		return tools.CheckPassword(user.Password)
	}
	return ""
}

func (user User) IsCompany() bool {
	return user.Role == USER_ROLE_COMPANY
}
