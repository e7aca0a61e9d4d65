package repository

import (
	"strings"

	"medmatch/entity"

	"gorm.io/gorm"
)

type JobRepository struct {
	DB *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// JobFilters are AND-combined; empty fields are ignored.
type JobFilters struct {
	Search         string
	Specialization string
	Location       string
}

func (r *JobRepository) Create(job *entity.Job) error {
	return r.DB.Create(job).Error
}

func (r *JobRepository) FindByID(id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.DB.Preload("Hospital").First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Search returns active jobs only, case-insensitive substring matches,
// newest first.
func (r *JobRepository) Search(f JobFilters, page, limit int) ([]entity.Job, int64, error) {
	q := r.DB.Model(&entity.Job{}).Where("status = ?", entity.JobStatusActive)

	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if f.Specialization != "" {
		q = q.Where("LOWER(specialization) LIKE ?", "%"+strings.ToLower(f.Specialization)+"%")
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []entity.Job
	err := q.Preload("Hospital").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&jobs).Error
	return jobs, total, err
}

// FindByHospital returns a hospital's jobs of any status, newest first.
func (r *JobRepository) FindByHospital(hospitalID uint, page, limit int) ([]entity.Job, int64, error) {
	q := r.DB.Model(&entity.Job{}).Where("hospital_id = ?", hospitalID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []entity.Job
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&jobs).Error
	return jobs, total, err
}

// List returns jobs of any hospital, optionally filtered by status (admin view).
func (r *JobRepository) List(status string, page, limit int) ([]entity.Job, int64, error) {
	q := r.DB.Model(&entity.Job{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []entity.Job
	err := q.Preload("Hospital").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepository) UpdateStatus(jobID uint, status string) error {
	return r.DB.Model(&entity.Job{}).Where("id = ?", jobID).Update("status", status).Error
}

func (r *JobRepository) CountByHospital(hospitalID uint, status string) (int64, error) {
	q := r.DB.Model(&entity.Job{}).Where("hospital_id = ?", hospitalID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
