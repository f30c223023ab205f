package models

import "gorm.io/gorm"

// DetectionResult is written once per classifier invocation and never updated.
type DetectionResult struct {
	gorm.Model

	UserID     uint `gorm:"column:user_id;index"`
	Prediction int  `gorm:"column:prediction"` // 1 = CKD, 0 = no CKD
}
