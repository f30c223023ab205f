package models

import "gorm.io/gorm"

type Inquiry struct {
	gorm.Model

	UserID   uint   `gorm:"column:user_id;index"`
	Message  string `gorm:"column:message"`
	Response string `gorm:"column:response"` // empty until an admin replies
}
