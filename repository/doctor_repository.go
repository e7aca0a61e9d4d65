package repository

import (
	"medmatch/entity"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	DB *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{DB: db}
}

func (r *DoctorRepository) FindByUserID(userID uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepository) FindByID(id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	if err := r.DB.First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *DoctorRepository) Update(doctorID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Doctor{}).Where("id = ?", doctorID).Updates(updates).Error
}
