package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// One application per (job, doctor) pair — the composite unique index is what
// makes the duplicate check race-safe, the service only translates the error.
type JobApplication struct {
	gorm.Model
	JobID    uint   `gorm:"uniqueIndex:idx_job_doctor;not null" json:"jobId"`
	Job      Job    `gorm:"constraint:OnDelete:CASCADE" json:"job"`
	DoctorID uint   `gorm:"uniqueIndex:idx_job_doctor;not null" json:"doctorId"`
	Doctor   Doctor `gorm:"constraint:OnDelete:CASCADE" json:"doctor"`

	Status      string     `gorm:"not null;default:pending" json:"status"`
	CoverLetter string     `json:"coverLetter"`
	AppliedAt   time.Time  `gorm:"autoCreateTime" json:"appliedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}
