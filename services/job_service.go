package services

import (
	"strings"

	"medmatch/entity"
	"medmatch/pkg/apperr"
	"medmatch/repository"
)

type JobService struct {
	Jobs         *repository.JobRepository
	Hospitals    *repository.HospitalRepository
	Applications *repository.ApplicationRepository
}

func NewJobService(jobs *repository.JobRepository, hospitals *repository.HospitalRepository, apps *repository.ApplicationRepository) *JobService {
	return &JobService{Jobs: jobs, Hospitals: hospitals, Applications: apps}
}

type PostJobInput struct {
	Title              string   `json:"title"`
	Specialization     string   `json:"specialization"`
	Description        string   `json:"description"`
	Location           string   `json:"location"`
	SalaryMin          *float64 `json:"salaryMin"`
	SalaryMax          *float64 `json:"salaryMax"`
	ExperienceRequired int      `json:"experienceRequired"`
	JobType            string   `json:"jobType"`
}

// HospitalStats backs the hospital dashboard.
type HospitalStats struct {
	TotalJobs           int64 `json:"totalJobs"`
	ActiveJobs          int64 `json:"activeJobs"`
	TotalApplications   int64 `json:"totalApplications"`
	PendingApplications int64 `json:"pendingApplications"`
}

func (s *JobService) Post(hospitalUserID uint, in PostJobInput) (*entity.Job, error) {
	hospital, err := s.Hospitals.FindByUserID(hospitalUserID)
	if err != nil {
		return nil, apperr.NotFound("hospital profile not found")
	}

	in.Title = strings.TrimSpace(in.Title)
	in.Specialization = strings.TrimSpace(in.Specialization)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" || in.Specialization == "" || in.Description == "" {
		return nil, apperr.Validation("title, specialization and description are required")
	}
	if in.ExperienceRequired < 0 {
		return nil, apperr.Validation("experience required cannot be negative")
	}
	if (in.SalaryMin != nil && *in.SalaryMin < 0) || (in.SalaryMax != nil && *in.SalaryMax < 0) {
		return nil, apperr.Validation("salary cannot be negative")
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return nil, apperr.Validation("minimum salary cannot exceed maximum salary")
	}
	switch in.JobType {
	case "", entity.JobTypeFullTime, entity.JobTypePartTime, entity.JobTypeContract:
	default:
		return nil, apperr.Validation("job type must be full-time, part-time or contract")
	}

	job := &entity.Job{
		HospitalID:         hospital.ID,
		Title:              in.Title,
		Specialization:     in.Specialization,
		Description:        in.Description,
		Location:           in.Location,
		ExperienceRequired: in.ExperienceRequired,
		JobType:            in.JobType,
		Status:             entity.JobStatusActive,
	}
	if in.SalaryMin != nil {
		job.SalaryMin = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		job.SalaryMax = *in.SalaryMax
	}

	if err := s.Jobs.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Close marks a job closed. Allowed for the owning hospital or an admin;
// closing an already closed job is a no-op.
func (s *JobService) Close(jobID, actorUserID uint, actorRole string) error {
	job, err := s.Jobs.FindByID(jobID)
	if err != nil {
		return apperr.NotFound("job not found")
	}

	if actorRole != entity.RoleAdmin {
		hospital, err := s.Hospitals.FindByUserID(actorUserID)
		if err != nil || hospital.ID != job.HospitalID {
			return apperr.Forbidden("forbidden")
		}
	}

	if job.Status == entity.JobStatusClosed {
		return nil
	}
	return s.Jobs.UpdateStatus(job.ID, entity.JobStatusClosed)
}

func (s *JobService) Search(f repository.JobFilters, page, limit int) ([]entity.Job, int64, error) {
	return s.Jobs.Search(f, page, limit)
}

// Get returns a single active job for the public detail page.
func (s *JobService) Get(jobID uint) (*entity.Job, error) {
	job, err := s.Jobs.FindByID(jobID)
	if err != nil || job.Status != entity.JobStatusActive {
		return nil, apperr.NotFound("job not found")
	}
	return job, nil
}

func (s *JobService) ListOwned(hospitalUserID uint, page, limit int) ([]entity.Job, int64, error) {
	hospital, err := s.Hospitals.FindByUserID(hospitalUserID)
	if err != nil {
		return nil, 0, apperr.NotFound("hospital profile not found")
	}
	return s.Jobs.FindByHospital(hospital.ID, page, limit)
}

func (s *JobService) Dashboard(hospitalUserID uint) (*HospitalStats, error) {
	hospital, err := s.Hospitals.FindByUserID(hospitalUserID)
	if err != nil {
		return nil, apperr.NotFound("hospital profile not found")
	}

	stats := &HospitalStats{}
	if stats.TotalJobs, err = s.Jobs.CountByHospital(hospital.ID, ""); err != nil {
		return nil, err
	}
	if stats.ActiveJobs, err = s.Jobs.CountByHospital(hospital.ID, entity.JobStatusActive); err != nil {
		return nil, err
	}
	if stats.TotalApplications, err = s.Applications.CountByHospital(hospital.ID, ""); err != nil {
		return nil, err
	}
	if stats.PendingApplications, err = s.Applications.CountByHospital(hospital.ID, entity.ApplicationPending); err != nil {
		return nil, err
	}
	return stats, nil
}
