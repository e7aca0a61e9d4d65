package controllers

import (
	"medmatch/pkg/resp"
	"medmatch/services"
	"medmatch/utils"

	"github.com/gin-gonic/gin"
)

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

type DoctorController struct {
	Profiles     *services.ProfileService
	Applications *services.ApplicationService
}

func NewDoctorController(profiles *services.ProfileService, apps *services.ApplicationService) *DoctorController {
	return &DoctorController{Profiles: profiles, Applications: apps}
}

// GET /doctor/profile
func (d *DoctorController) Profile(c *gin.Context) {
	doctor, err := d.Profiles.GetDoctor(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, doctor)
}

// PATCH /doctor/profile
func (d *DoctorController) UpdateProfile(c *gin.Context) {
	var req services.UpdateDoctorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	doctor, err := d.Profiles.UpdateDoctor(utils.CurrentUserID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, doctor)
}

// POST /doctor/jobs/:id/apply
func (d *DoctorController) Apply(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid job id")
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		resp.BadRequest(c, err.Error())
		return
	}

	app, err := d.Applications.Apply(utils.CurrentUserID(c), jobID, req.CoverLetter)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": app.ID, "jobId": app.JobID, "status": app.Status, "appliedAt": app.AppliedAt})
}

// GET /doctor/applications
func (d *DoctorController) MyApplications(c *gin.Context) {
	page, limit := pageParams(c)

	views, total, err := d.Applications.ListForDoctor(utils.CurrentUserID(c), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paginated(c, views, total, page, limit)
}
