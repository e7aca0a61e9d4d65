package services

import (
	"errors"
	"time"

	"medmatch/entity"
	"medmatch/pkg/apperr"
	"medmatch/repository"

	"gorm.io/gorm"
)

type ApplicationService struct {
	DB           *gorm.DB
	Applications *repository.ApplicationRepository
	Jobs         *repository.JobRepository
	Doctors      *repository.DoctorRepository
	Hospitals    *repository.HospitalRepository
	Users        *repository.UserRepository
}

func NewApplicationService(db *gorm.DB, apps *repository.ApplicationRepository, jobs *repository.JobRepository, doctors *repository.DoctorRepository, hospitals *repository.HospitalRepository, users *repository.UserRepository) *ApplicationService {
	return &ApplicationService{DB: db, Applications: apps, Jobs: jobs, Doctors: doctors, Hospitals: hospitals, Users: users}
}

// ApplicationView is the doctor-facing listing row, with job and hospital
// joined in for display.
type ApplicationView struct {
	ID           uint       `json:"id"`
	JobID        uint       `json:"jobId"`
	JobTitle     string     `json:"jobTitle"`
	JobStatus    string     `json:"jobStatus"`
	HospitalName string     `json:"hospitalName"`
	Location     string     `json:"location"`
	Status       string     `json:"status"`
	CoverLetter  string     `json:"coverLetter"`
	AppliedAt    time.Time  `json:"appliedAt"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
}

// Apply submits a doctor's application. The doctor must be verified, the job
// must exist and be active, and each doctor may apply to a job once.
func (s *ApplicationService) Apply(doctorUserID, jobID uint, coverLetter string) (*entity.JobApplication, error) {
	user, err := s.Users.FindByID(doctorUserID)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	if !user.IsVerified {
		return nil, apperr.Forbidden("account not verified")
	}

	doctor, err := s.Doctors.FindByUserID(doctorUserID)
	if err != nil {
		return nil, apperr.NotFound("doctor profile not found")
	}

	job, err := s.Jobs.FindByID(jobID)
	if err != nil {
		return nil, apperr.NotFound("job not found")
	}
	if job.Status != entity.JobStatusActive {
		return nil, apperr.Validation("job is closed")
	}

	// Friendly pre-check; the (job_id, doctor_id) unique index decides races.
	if exists, err := s.Applications.ExistsByJobAndDoctor(job.ID, doctor.ID); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Conflict("you have already applied for this job")
	}

	app := &entity.JobApplication{
		JobID:       job.ID,
		DoctorID:    doctor.ID,
		Status:      entity.ApplicationPending,
		CoverLetter: coverLetter,
	}
	if err := s.Applications.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("you have already applied for this job")
		}
		return nil, err
	}
	return app, nil
}

// Review moves an application along the transition table. Only the hospital
// that owns the job may review; reviewed_at is stamped when status leaves
// pending.
func (s *ApplicationService) Review(appID, hospitalUserID uint, newStatus string) (*entity.JobApplication, error) {
	app, err := s.Applications.FindByID(appID)
	if err != nil {
		return nil, apperr.NotFound("application not found")
	}

	hospital, err := s.Hospitals.FindByUserID(hospitalUserID)
	if err != nil || app.Job.HospitalID != hospital.ID {
		return nil, apperr.Forbidden("forbidden")
	}

	if !isReviewStatus(newStatus) {
		return nil, apperr.Validation("status must be reviewed, accepted or rejected")
	}
	if isTerminalStatus(app.Status) {
		return nil, apperr.Validation("application status is final")
	}
	if !isAllowedTransition(app.Status, newStatus) {
		return nil, apperr.Validation("invalid status transition")
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Applications.UpdateStatusGuard(tx, app.ID, []string{app.Status}, newStatus, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.Conflict("application was updated concurrently")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	app.Status = newStatus
	app.ReviewedAt = &now
	return app, nil
}

func (s *ApplicationService) ListForDoctor(doctorUserID uint, page, limit int) ([]ApplicationView, int64, error) {
	doctor, err := s.Doctors.FindByUserID(doctorUserID)
	if err != nil {
		return nil, 0, apperr.NotFound("doctor profile not found")
	}

	apps, total, err := s.Applications.FindByDoctor(doctor.ID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		views = append(views, ApplicationView{
			ID:           a.ID,
			JobID:        a.JobID,
			JobTitle:     a.Job.Title,
			JobStatus:    a.Job.Status,
			HospitalName: a.Job.Hospital.HospitalName,
			Location:     a.Job.Location,
			Status:       a.Status,
			CoverLetter:  a.CoverLetter,
			AppliedAt:    a.AppliedAt,
			ReviewedAt:   a.ReviewedAt,
		})
	}
	return views, total, nil
}

// ListForJob is the hospital's applicant listing, ownership-checked.
func (s *ApplicationService) ListForJob(jobID, hospitalUserID uint, page, limit int) ([]entity.JobApplication, int64, error) {
	job, err := s.Jobs.FindByID(jobID)
	if err != nil {
		return nil, 0, apperr.NotFound("job not found")
	}

	hospital, err := s.Hospitals.FindByUserID(hospitalUserID)
	if err != nil || job.HospitalID != hospital.ID {
		return nil, 0, apperr.Forbidden("forbidden")
	}

	return s.Applications.FindByJob(job.ID, page, limit)
}
