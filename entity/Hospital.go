package entity

import (
	"gorm.io/gorm"
)

type Hospital struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	HospitalName string `json:"hospitalName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Website      string `json:"website"`
	Description  string `json:"description"`

	Jobs []Job `gorm:"foreignKey:HospitalID" json:"-"`
}
