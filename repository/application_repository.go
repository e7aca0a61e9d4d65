package repository

import (
	"time"

	"medmatch/entity"

	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *entity.JobApplication) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindByID(id uint) (*entity.JobApplication, error) {
	var app entity.JobApplication
	if err := r.DB.Preload("Job").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ExistsByJobAndDoctor(jobID, doctorID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.JobApplication{}).
		Where("job_id = ? AND doctor_id = ?", jobID, doctorID).
		Count(&count).Error
	return count > 0, err
}

// FindByDoctor returns a doctor's applications with job and hospital loaded,
// newest-applied first.
func (r *ApplicationRepository) FindByDoctor(doctorID uint, page, limit int) ([]entity.JobApplication, int64, error) {
	q := r.DB.Model(&entity.JobApplication{}).Where("doctor_id = ?", doctorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []entity.JobApplication
	err := q.Preload("Job").Preload("Job.Hospital").
		Order("applied_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

// FindByJob returns a job's applications with the doctor profile loaded,
// newest-applied first. Ownership is checked by the caller.
func (r *ApplicationRepository) FindByJob(jobID uint, page, limit int) ([]entity.JobApplication, int64, error) {
	q := r.DB.Model(&entity.JobApplication{}).Where("job_id = ?", jobID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []entity.JobApplication
	err := q.Preload("Doctor").
		Order("applied_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

// List returns applications across all jobs, optionally filtered by status
// (admin view).
func (r *ApplicationRepository) List(status string, page, limit int) ([]entity.JobApplication, int64, error) {
	q := r.DB.Model(&entity.JobApplication{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []entity.JobApplication
	err := q.Preload("Job").Preload("Doctor").
		Order("applied_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

// UpdateStatusGuard flips status only when the row still holds one of the
// expected statuses; the affected count tells the caller whether it lost a race.
func (r *ApplicationRepository) UpdateStatusGuard(tx *gorm.DB, appID uint, from []string, to string, reviewedAt time.Time) (int64, error) {
	res := tx.Model(&entity.JobApplication{}).
		Where("id = ? AND status IN ?", appID, from).
		Updates(map[string]any{"status": to, "reviewed_at": reviewedAt})
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepository) CountByHospital(hospitalID uint, status string) (int64, error) {
	q := r.DB.Model(&entity.JobApplication{}).
		Joins("JOIN jobs ON jobs.id = job_applications.job_id").
		Where("jobs.hospital_id = ?", hospitalID)
	if status != "" {
		q = q.Where("job_applications.status = ?", status)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
