package entity

import (
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	FullName        string `json:"fullName"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `gorm:"default:0" json:"experienceYears"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	ResumeURL       string `json:"resumeUrl"`
	Bio             string `json:"bio"`

	Applications []JobApplication `gorm:"foreignKey:DoctorID" json:"-"`
}
