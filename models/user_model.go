package models

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:'staff'"`
}
