package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"size:64;uniqueIndex"`
	Email    string `json:"email" gorm:"size:128;uniqueIndex"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type RegisterData struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
