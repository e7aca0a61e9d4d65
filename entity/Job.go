package entity

import (
	"gorm.io/gorm"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeContract = "contract"
)

type Job struct {
	gorm.Model
	HospitalID uint     `gorm:"index;not null" json:"hospitalId"`
	Hospital   Hospital `gorm:"constraint:OnDelete:CASCADE" json:"hospital"`

	Title              string  `gorm:"not null" json:"title"`
	Specialization     string  `gorm:"not null" json:"specialization"`
	Description        string  `gorm:"not null" json:"description"`
	Location           string  `json:"location"`
	SalaryMin          float64 `json:"salaryMin"`
	SalaryMax          float64 `json:"salaryMax"`
	ExperienceRequired int     `gorm:"default:0" json:"experienceRequired"`
	JobType            string  `json:"jobType"`
	Status             string  `gorm:"not null;default:active" json:"status"`

	Applications []JobApplication `gorm:"foreignKey:JobID" json:"-"`
}
