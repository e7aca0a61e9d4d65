package controllers

import (
	"medmatch/pkg/resp"
	"medmatch/repository"
	"medmatch/services"

	"github.com/gin-gonic/gin"
)

// JobController serves the public job board.
type JobController struct {
	Jobs *services.JobService
}

func NewJobController(jobs *services.JobService) *JobController {
	return &JobController{Jobs: jobs}
}

// GET /jobs?search=&specialization=&location=&page=&limit=
func (j *JobController) Search(c *gin.Context) {
	filters := repository.JobFilters{
		Search:         c.Query("search"),
		Specialization: c.Query("specialization"),
		Location:       c.Query("location"),
	}
	page, limit := pageParams(c)

	jobs, total, err := j.Jobs.Search(filters, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Paginated(c, jobs, total, page, limit)
}

// GET /jobs/:id
func (j *JobController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid job id")
		return
	}

	job, err := j.Jobs.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, job)
}
