package controllers

import (
	"medmatch/entity"
	"medmatch/pkg/resp"
	"medmatch/services"
	"medmatch/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
	Jobs  *services.JobService
}

func NewAdminController(admin *services.AdminService, jobs *services.JobService) *AdminController {
	return &AdminController{Admin: admin, Jobs: jobs}
}

// GET /admin/dashboard
func (a *AdminController) Dashboard(c *gin.Context) {
	stats, err := a.Admin.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/reports
func (a *AdminController) Reports(c *gin.Context) {
	reports, err := a.Admin.Reports()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reports)
}

// GET /admin/users?role=&page=&limit=
func (a *AdminController) Users(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := a.Admin.ListUsers(c.Query("role"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, users, total, page, limit)
}

// PATCH /admin/users/:id/verify
func (a *AdminController) VerifyUser(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := a.Admin.VerifyUser(userID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": userID, "isVerified": true})
}

// DELETE /admin/users/:id
func (a *AdminController) DeactivateUser(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}

	if err := a.Admin.DeactivateUser(userID, utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": userID, "deactivated": true})
}

// GET /admin/jobs?status=&page=&limit=
func (a *AdminController) ListJobs(c *gin.Context) {
	page, limit := pageParams(c)

	jobs, total, err := a.Admin.ListJobs(c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, jobs, total, page, limit)
}

// PATCH /admin/jobs/:id/close
func (a *AdminController) CloseJob(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid job id")
		return
	}

	if err := a.Jobs.Close(jobID, utils.CurrentUserID(c), entity.RoleAdmin); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": jobID, "status": entity.JobStatusClosed})
}

// GET /admin/applications?status=&page=&limit=
func (a *AdminController) ListApplications(c *gin.Context) {
	page, limit := pageParams(c)

	apps, total, err := a.Admin.ListApplications(c.Query("status"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Paginated(c, apps, total, page, limit)
}
