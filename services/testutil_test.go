package services

import (
	"fmt"
	"testing"
	"time"

	"medmatch/entity"
	"medmatch/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every repo and service against a fresh in-memory database.
type testEnv struct {
	DB           *gorm.DB
	Users        *repository.UserRepository
	Doctors      *repository.DoctorRepository
	Hospitals    *repository.HospitalRepository
	Jobs         *repository.JobRepository
	Applications *repository.ApplicationRepository
	Stats        *repository.StatsRepository

	Auth     *AuthService
	Profiles *ProfileService
	JobSvc   *JobService
	AppSvc   *ApplicationService
	Admin    *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Doctor{}, &entity.Hospital{},
		&entity.Job{}, &entity.JobApplication{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	env := &testEnv{
		DB:           db,
		Users:        repository.NewUserRepository(db),
		Doctors:      repository.NewDoctorRepository(db),
		Hospitals:    repository.NewHospitalRepository(db),
		Jobs:         repository.NewJobRepository(db),
		Applications: repository.NewApplicationRepository(db),
		Stats:        repository.NewStatsRepository(db),
	}
	env.Auth = NewAuthService(db, env.Users, nil, "test-secret", time.Hour)
	env.Profiles = NewProfileService(env.Doctors, env.Hospitals)
	env.JobSvc = NewJobService(env.Jobs, env.Hospitals, env.Applications)
	env.AppSvc = NewApplicationService(db, env.Applications, env.Jobs, env.Doctors, env.Hospitals, env.Users)
	env.Admin = NewAdminService(db, env.Users, env.Jobs, env.Applications, env.Stats)
	return env
}

// createUser inserts a user plus the matching blank profile, bypassing the
// register flow so fixtures stay short.
func (e *testEnv) createUser(t *testing.T, username, role string, verified bool) *entity.User {
	t.Helper()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user := &entity.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   string(hash),
		Role:       role,
		IsVerified: verified,
	}
	if err := e.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}

	switch role {
	case entity.RoleDoctor:
		if err := e.DB.Create(&entity.Doctor{UserID: user.ID}).Error; err != nil {
			t.Fatalf("create doctor profile: %v", err)
		}
	case entity.RoleHospital:
		if err := e.DB.Create(&entity.Hospital{UserID: user.ID}).Error; err != nil {
			t.Fatalf("create hospital profile: %v", err)
		}
	}
	return user
}

func (e *testEnv) doctorOf(t *testing.T, user *entity.User) *entity.Doctor {
	t.Helper()
	doctor, err := e.Doctors.FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("doctor profile of %s: %v", user.Username, err)
	}
	return doctor
}

func (e *testEnv) hospitalOf(t *testing.T, user *entity.User) *entity.Hospital {
	t.Helper()
	hospital, err := e.Hospitals.FindByUserID(user.ID)
	if err != nil {
		t.Fatalf("hospital profile of %s: %v", user.Username, err)
	}
	return hospital
}

// createJob posts an active job for the hospital user.
func (e *testEnv) createJob(t *testing.T, hospitalUser *entity.User, title, specialization, location string) *entity.Job {
	t.Helper()

	job, err := e.JobSvc.Post(hospitalUser.ID, PostJobInput{
		Title:          title,
		Specialization: specialization,
		Description:    "description of " + title,
		Location:       location,
	})
	if err != nil {
		t.Fatalf("post job %s: %v", title, err)
	}
	return job
}

func (e *testEnv) countApplications(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.DB.Model(&entity.JobApplication{}).Count(&n).Error; err != nil {
		t.Fatalf("count applications: %v", err)
	}
	return n
}
