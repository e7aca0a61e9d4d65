package services

import (
	"medmatch/entity"
	"medmatch/pkg/apperr"
	"medmatch/repository"

	"gorm.io/gorm"
)

type AdminService struct {
	DB           *gorm.DB
	Users        *repository.UserRepository
	Jobs         *repository.JobRepository
	Applications *repository.ApplicationRepository
	Stats        *repository.StatsRepository
}

func NewAdminService(db *gorm.DB, users *repository.UserRepository, jobs *repository.JobRepository, apps *repository.ApplicationRepository, stats *repository.StatsRepository) *AdminService {
	return &AdminService{DB: db, Users: users, Jobs: jobs, Applications: apps, Stats: stats}
}

type AdminStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	VerifiedUsers     int64 `json:"verifiedUsers"`
	UnverifiedUsers   int64 `json:"unverifiedUsers"`
	Doctors           int64 `json:"doctors"`
	Hospitals         int64 `json:"hospitals"`
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
}

type Reports struct {
	JobsByStatus         []repository.GroupCount `json:"jobsByStatus"`
	JobsBySpecialization []repository.GroupCount `json:"jobsBySpecialization"`
	ApplicationsByStatus []repository.GroupCount `json:"applicationsByStatus"`
	UsersByRole          []repository.GroupCount `json:"usersByRole"`
	UsersByVerification  []repository.GroupCount `json:"usersByVerification"`
}

// VerifyUser marks the account verified. Verifying twice is a no-op.
func (s *AdminService) VerifyUser(userID uint) error {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return apperr.NotFound("user not found")
	}
	if user.IsVerified {
		return nil
	}
	return s.Users.Update(user.ID, map[string]any{"is_verified": true})
}

// DeactivateUser deletes the account and everything it owns, in one
// transaction: a hospital loses its jobs and their applications, a doctor
// loses its applications. Admins cannot deactivate themselves.
func (s *AdminService) DeactivateUser(userID, actorID uint) error {
	if userID == actorID {
		return apperr.Validation("cannot deactivate your own account")
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return apperr.NotFound("user not found")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		switch user.Role {
		case entity.RoleDoctor:
			var doctor entity.Doctor
			if err := tx.Where("user_id = ?", user.ID).First(&doctor).Error; err == nil {
				if err := tx.Where("doctor_id = ?", doctor.ID).Delete(&entity.JobApplication{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&doctor).Error; err != nil {
					return err
				}
			}
		case entity.RoleHospital:
			var hospital entity.Hospital
			if err := tx.Where("user_id = ?", user.ID).First(&hospital).Error; err == nil {
				var jobIDs []uint
				if err := tx.Model(&entity.Job{}).Where("hospital_id = ?", hospital.ID).Pluck("id", &jobIDs).Error; err != nil {
					return err
				}
				if len(jobIDs) > 0 {
					if err := tx.Where("job_id IN ?", jobIDs).Delete(&entity.JobApplication{}).Error; err != nil {
						return err
					}
					if err := tx.Where("id IN ?", jobIDs).Delete(&entity.Job{}).Error; err != nil {
						return err
					}
				}
				if err := tx.Delete(&hospital).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&entity.User{}, user.ID).Error
	})
}

func (s *AdminService) ListUsers(role string, page, limit int) ([]entity.User, int64, error) {
	return s.Users.List(role, page, limit)
}

func (s *AdminService) ListJobs(status string, page, limit int) ([]entity.Job, int64, error) {
	return s.Jobs.List(status, page, limit)
}

func (s *AdminService) ListApplications(status string, page, limit int) ([]entity.JobApplication, int64, error) {
	return s.Applications.List(status, page, limit)
}

func (s *AdminService) Dashboard() (*AdminStats, error) {
	stats := &AdminStats{}
	var err error
	if stats.TotalUsers, err = s.Stats.CountUsers(); err != nil {
		return nil, err
	}
	if stats.VerifiedUsers, err = s.Stats.CountUsersByVerified(true); err != nil {
		return nil, err
	}
	if stats.UnverifiedUsers, err = s.Stats.CountUsersByVerified(false); err != nil {
		return nil, err
	}
	if stats.Doctors, err = s.Stats.CountUsersByRole(entity.RoleDoctor); err != nil {
		return nil, err
	}
	if stats.Hospitals, err = s.Stats.CountUsersByRole(entity.RoleHospital); err != nil {
		return nil, err
	}
	if stats.TotalJobs, err = s.Stats.CountJobs(""); err != nil {
		return nil, err
	}
	if stats.ActiveJobs, err = s.Stats.CountJobs(entity.JobStatusActive); err != nil {
		return nil, err
	}
	if stats.TotalApplications, err = s.Stats.CountApplications(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *AdminService) Reports() (*Reports, error) {
	reports := &Reports{}
	var err error
	if reports.JobsByStatus, err = s.Stats.JobsByStatus(); err != nil {
		return nil, err
	}
	if reports.JobsBySpecialization, err = s.Stats.JobsBySpecialization(); err != nil {
		return nil, err
	}
	if reports.ApplicationsByStatus, err = s.Stats.ApplicationsByStatus(); err != nil {
		return nil, err
	}
	if reports.UsersByRole, err = s.Stats.UsersByRole(); err != nil {
		return nil, err
	}
	if reports.UsersByVerification, err = s.Stats.UsersByVerification(); err != nil {
		return nil, err
	}
	return reports, nil
}
