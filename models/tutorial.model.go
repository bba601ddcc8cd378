package models

import "gorm.io/gorm"

type Tutorial struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	VideoURL    string `json:"video_url" gorm:"not null"`
	Description string `json:"description"`
}
