package db

import "gorm.io/gorm"

// Attorney is a firm profile shown on the public attorneys page.
// Lower DisplayOrder sorts first.
type Attorney struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Role           string `gorm:"not null"`
	Specialization string `gorm:"not null"`
	Bio            string `gorm:"type:text"`
	ImageURL       string
	DisplayOrder   int `gorm:"index"`
}
