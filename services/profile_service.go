package services

import (
	"medmatch/entity"
	"medmatch/pkg/apperr"
	"medmatch/repository"
)

// ProfileService reads and partially updates role profiles. Absent fields are
// never written, so an omitted key keeps its prior value.
type ProfileService struct {
	Doctors   *repository.DoctorRepository
	Hospitals *repository.HospitalRepository
}

func NewProfileService(doctors *repository.DoctorRepository, hospitals *repository.HospitalRepository) *ProfileService {
	return &ProfileService{Doctors: doctors, Hospitals: hospitals}
}

type UpdateDoctorInput struct {
	FullName        *string `json:"fullName"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experienceYears"`
	Phone           *string `json:"phone"`
	Location        *string `json:"location"`
	ResumeURL       *string `json:"resumeUrl"`
	Bio             *string `json:"bio"`
}

type UpdateHospitalInput struct {
	HospitalName *string `json:"hospitalName"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Website      *string `json:"website"`
	Description  *string `json:"description"`
}

func (s *ProfileService) GetDoctor(userID uint) (*entity.Doctor, error) {
	doctor, err := s.Doctors.FindByUserID(userID)
	if err != nil {
		return nil, apperr.NotFound("doctor profile not found")
	}
	return doctor, nil
}

func (s *ProfileService) UpdateDoctor(userID uint, in UpdateDoctorInput) (*entity.Doctor, error) {
	doctor, err := s.GetDoctor(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Specialization != nil {
		updates["specialization"] = *in.Specialization
	}
	if in.ExperienceYears != nil {
		if *in.ExperienceYears < 0 {
			return nil, apperr.Validation("experience years cannot be negative")
		}
		updates["experience_years"] = *in.ExperienceYears
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.ResumeURL != nil {
		updates["resume_url"] = *in.ResumeURL
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}

	if len(updates) == 0 {
		return doctor, nil
	}
	if err := s.Doctors.Update(doctor.ID, updates); err != nil {
		return nil, err
	}
	return s.Doctors.FindByID(doctor.ID)
}

func (s *ProfileService) GetHospital(userID uint) (*entity.Hospital, error) {
	hospital, err := s.Hospitals.FindByUserID(userID)
	if err != nil {
		return nil, apperr.NotFound("hospital profile not found")
	}
	return hospital, nil
}

func (s *ProfileService) UpdateHospital(userID uint, in UpdateHospitalInput) (*entity.Hospital, error) {
	hospital, err := s.GetHospital(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.HospitalName != nil {
		updates["hospital_name"] = *in.HospitalName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.City != nil {
		updates["city"] = *in.City
	}
	if in.State != nil {
		updates["state"] = *in.State
	}
	if in.Website != nil {
		updates["website"] = *in.Website
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}

	if len(updates) == 0 {
		return hospital, nil
	}
	if err := s.Hospitals.Update(hospital.ID, updates); err != nil {
		return nil, err
	}
	return s.Hospitals.FindByID(hospital.ID)
}
