package models

import "gorm.io/gorm"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	gorm.Model

	Username string `gorm:"column:username;uniqueIndex"` // login name, globally unique
	Email    string `gorm:"column:email;uniqueIndex"`    // notification address, globally unique
	Role     string `gorm:"column:role"`                 // "admin" or "client"

	Password string `gorm:"column:password"` // argon2id hash
}
