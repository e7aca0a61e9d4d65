package repository

import (
	"medmatch/entity"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	DB *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{DB: db}
}

func (r *HospitalRepository) FindByUserID(userID uint) (*entity.Hospital, error) {
	var hospital entity.Hospital
	if err := r.DB.Where("user_id = ?", userID).First(&hospital).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *HospitalRepository) FindByID(id uint) (*entity.Hospital, error) {
	var hospital entity.Hospital
	if err := r.DB.First(&hospital, id).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *HospitalRepository) Update(hospitalID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Hospital{}).Where("id = ?", hospitalID).Updates(updates).Error
}
