package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Categories []MenuCategory `json:"-"`
}
