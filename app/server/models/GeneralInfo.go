package models

import "gorm.io/gorm"

type GeneralInfo struct {
	gorm.Model

	Title   string `gorm:"column:title"`
	Content string `gorm:"column:content"`
}
