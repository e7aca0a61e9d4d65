package entity

import (
	"gorm.io/gorm"
)

const (
	RoleDoctor   = "doctor"
	RoleHospital = "hospital"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Username   string `gorm:"uniqueIndex;not null" json:"username"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `json:"-"`
	Role       string `gorm:"not null" json:"role"`
	IsVerified bool   `gorm:"not null;default:false" json:"isVerified"`

	// Relations — preload only when needed
	DoctorProfile   *Doctor   `gorm:"foreignKey:UserID" json:"-"`
	HospitalProfile *Hospital `gorm:"foreignKey:UserID" json:"-"`
}
