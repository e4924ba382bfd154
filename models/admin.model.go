package models

import "gorm.io/gorm"

// AdminAccount is a separate principal table from User. Login always checks
// this table first for a given identifier.
type AdminAccount struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
