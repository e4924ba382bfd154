package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"default:0"`
	ListPrice   float64 `json:"list_price" gorm:"default:0"` // Pre-discount price shown struck through
	PosterURL   string  `json:"poster_url"`
	Category    string  `json:"category" gorm:"index"`
	Featured    bool    `json:"featured" gorm:"default:false"`
	IsDeleted   bool    `json:"-" gorm:"default:false"`
}
