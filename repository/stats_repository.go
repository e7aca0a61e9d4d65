package repository

import (
	"medmatch/entity"

	"gorm.io/gorm"
)

// StatsRepository serves the admin dashboard and report aggregates.
type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

type GroupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

func (r *StatsRepository) CountUsers() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountUsersByVerified(verified bool) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("is_verified = ?", verified).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountUsersByRole(role string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountJobs(status string) (int64, error) {
	q := r.DB.Model(&entity.Job{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountApplications() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.JobApplication{}).Count(&n).Error
	return n, err
}

func (r *StatsRepository) JobsByStatus() ([]GroupCount, error) {
	return r.group(&entity.Job{}, "status")
}

func (r *StatsRepository) JobsBySpecialization() ([]GroupCount, error) {
	return r.group(&entity.Job{}, "specialization")
}

func (r *StatsRepository) ApplicationsByStatus() ([]GroupCount, error) {
	return r.group(&entity.JobApplication{}, "status")
}

func (r *StatsRepository) UsersByRole() ([]GroupCount, error) {
	return r.group(&entity.User{}, "role")
}

func (r *StatsRepository) UsersByVerification() ([]GroupCount, error) {
	return r.group(&entity.User{}, "is_verified")
}

func (r *StatsRepository) group(model any, column string) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.DB.Model(model).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	return rows, err
}
