package services

import (
	"testing"

	"medmatch/entity"
	"medmatch/pkg/apperr"
)

func TestVerifyUserIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice", entity.RoleDoctor, false)

	if err := env.Admin.VerifyUser(user.ID); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := env.Admin.VerifyUser(user.ID); err != nil {
		t.Errorf("second verify: %v", err)
	}

	stored, err := env.Users.FindByID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.IsVerified {
		t.Error("user not verified")
	}

	if err := env.Admin.VerifyUser(999); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("verify unknown user: want not_found, got %v", err)
	}
}

func TestDeactivateSelfBlocked(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "root", entity.RoleAdmin, true)

	if err := env.Admin.DeactivateUser(admin.ID, admin.ID); !apperr.Is(err, apperr.CodeValidation) {
		t.Errorf("self deactivation: want validation error, got %v", err)
	}
	if _, err := env.Users.FindByID(admin.ID); err != nil {
		t.Errorf("admin deleted by failed self-deactivation: %v", err)
	}
}

// Deleting a hospital removes its jobs and their applications; the doctor's
// applications at other hospitals survive.
func TestDeactivateHospitalCascades(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "root", entity.RoleAdmin, true)
	hospA := env.createUser(t, "genhosp", entity.RoleHospital, true)
	hospB := env.createUser(t, "cityhosp", entity.RoleHospital, true)
	doctor := env.createUser(t, "alice", entity.RoleDoctor, true)

	jobA := env.createJob(t, hospA, "Cardiologist", "Cardiology", "")
	jobB := env.createJob(t, hospB, "Surgeon", "Surgery", "")
	if _, err := env.AppSvc.Apply(doctor.ID, jobA.ID, ""); err != nil {
		t.Fatal(err)
	}
	if _, err := env.AppSvc.Apply(doctor.ID, jobB.ID, ""); err != nil {
		t.Fatal(err)
	}

	if err := env.Admin.DeactivateUser(hospA.ID, admin.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := env.Users.FindByID(hospA.ID); err == nil {
		t.Error("hospital user still present")
	}
	if _, err := env.Hospitals.FindByUserID(hospA.ID); err == nil {
		t.Error("hospital profile still present")
	}
	if _, err := env.Jobs.FindByID(jobA.ID); err == nil {
		t.Error("hospital's job still present")
	}

	// The unrelated application survives, the cascaded one is gone
	views, total, err := env.AppSvc.ListForDoctor(doctor.ID, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(views) != 1 || views[0].JobID != jobB.ID {
		t.Errorf("doctor applications after cascade: total=%d views=%+v", total, views)
	}
}

func TestDeactivateDoctorCascades(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "root", entity.RoleAdmin, true)
	hosp := env.createUser(t, "genhosp", entity.RoleHospital, true)
	doctor := env.createUser(t, "alice", entity.RoleDoctor, true)

	job := env.createJob(t, hosp, "Cardiologist", "Cardiology", "")
	if _, err := env.AppSvc.Apply(doctor.ID, job.ID, ""); err != nil {
		t.Fatal(err)
	}

	if err := env.Admin.DeactivateUser(doctor.ID, admin.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if n := env.countApplications(t); n != 0 {
		t.Errorf("applications after doctor deletion = %d, want 0", n)
	}
	// The hospital's job is untouched
	if _, err := env.Jobs.FindByID(job.ID); err != nil {
		t.Errorf("job deleted by doctor cascade: %v", err)
	}
}

func TestAdminDashboardAndReports(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root", entity.RoleAdmin, true)
	hosp := env.createUser(t, "genhosp", entity.RoleHospital, true)
	doctor := env.createUser(t, "alice", entity.RoleDoctor, true)
	env.createUser(t, "bob", entity.RoleDoctor, false)

	job := env.createJob(t, hosp, "Cardiologist", "Cardiology", "")
	env.createJob(t, hosp, "Surgeon", "Surgery", "")
	if _, err := env.AppSvc.Apply(doctor.ID, job.ID, ""); err != nil {
		t.Fatal(err)
	}

	stats, err := env.Admin.Dashboard()
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TotalUsers != 4 || stats.Doctors != 2 || stats.Hospitals != 1 {
		t.Errorf("user counts: %+v", stats)
	}
	if stats.VerifiedUsers != 3 || stats.UnverifiedUsers != 1 {
		t.Errorf("verification counts: %+v", stats)
	}
	if stats.TotalJobs != 2 || stats.ActiveJobs != 2 || stats.TotalApplications != 1 {
		t.Errorf("job/application counts: %+v", stats)
	}

	reports, err := env.Admin.Reports()
	if err != nil {
		t.Fatalf("reports: %v", err)
	}
	bySpec := map[string]int64{}
	for _, g := range reports.JobsBySpecialization {
		bySpec[g.Key] = g.Count
	}
	if bySpec["Cardiology"] != 1 || bySpec["Surgery"] != 1 {
		t.Errorf("jobs by specialization: %+v", reports.JobsBySpecialization)
	}
	byStatus := map[string]int64{}
	for _, g := range reports.ApplicationsByStatus {
		byStatus[g.Key] = g.Count
	}
	if byStatus[entity.ApplicationPending] != 1 {
		t.Errorf("applications by status: %+v", reports.ApplicationsByStatus)
	}
}

func TestAdminListUsersFilter(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "root", entity.RoleAdmin, true)
	env.createUser(t, "alice", entity.RoleDoctor, true)
	env.createUser(t, "bob", entity.RoleDoctor, false)
	env.createUser(t, "genhosp", entity.RoleHospital, true)

	users, total, err := env.Admin.ListUsers(entity.RoleDoctor, 1, 10)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if total != 2 || len(users) != 2 {
		t.Fatalf("doctor filter: total=%d len=%d", total, len(users))
	}
	for _, u := range users {
		if u.Role != entity.RoleDoctor {
			t.Errorf("wrong role in filtered list: %+v", u)
		}
	}

	_, total, err = env.Admin.ListUsers("", 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Errorf("unfiltered total = %d, want 4", total)
	}
}
