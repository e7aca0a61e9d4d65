package controllers

import (
	"medmatch/entity"
	"medmatch/pkg/resp"
	"medmatch/services"
	"medmatch/utils"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Status string `json:"status" binding:"required"`
}

type HospitalController struct {
	Profiles     *services.ProfileService
	Jobs         *services.JobService
	Applications *services.ApplicationService
}

func NewHospitalController(profiles *services.ProfileService, jobs *services.JobService, apps *services.ApplicationService) *HospitalController {
	return &HospitalController{Profiles: profiles, Jobs: jobs, Applications: apps}
}

// GET /hospital/profile
func (h *HospitalController) Profile(c *gin.Context) {
	hospital, err := h.Profiles.GetHospital(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, hospital)
}

// PATCH /hospital/profile
func (h *HospitalController) UpdateProfile(c *gin.Context) {
	var req services.UpdateHospitalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	hospital, err := h.Profiles.UpdateHospital(utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, hospital)
}

// GET /hospital/dashboard
func (h *HospitalController) Dashboard(c *gin.Context) {
	stats, err := h.Jobs.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

// POST /hospital/jobs
func (h *HospitalController) PostJob(c *gin.Context) {
	var req services.PostJobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	job, err := h.Jobs.Post(utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, job)
}

// GET /hospital/jobs
func (h *HospitalController) MyJobs(c *gin.Context) {
	page, limit := pageParams(c)

	jobs, total, err := h.Jobs.ListOwned(utils.CurrentUserID(c), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paginated(c, jobs, total, page, limit)
}

// PATCH /hospital/jobs/:id/close
func (h *HospitalController) CloseJob(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid job id")
		return
	}

	if err := h.Jobs.Close(jobID, utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": jobID, "status": entity.JobStatusClosed})
}

// GET /hospital/jobs/:id/applicants
func (h *HospitalController) Applicants(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid job id")
		return
	}
	page, limit := pageParams(c)

	apps, total, err := h.Applications.ListForJob(jobID, utils.CurrentUserID(c), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paginated(c, apps, total, page, limit)
}

// PATCH /hospital/applications/:id/review
func (h *HospitalController) Review(c *gin.Context) {
	appID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid application id")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	app, err := h.Applications.Review(appID, utils.CurrentUserID(c), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": app.ID, "status": app.Status, "reviewedAt": app.ReviewedAt})
}
