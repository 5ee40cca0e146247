package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	request "scale_workshop/internal/adapter/http/dto/request"
	response "scale_workshop/internal/adapter/http/dto/response"
	"scale_workshop/internal/domain/entities"
	"scale_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// CreateJob godoc
// @Summary      Open a job at intake
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                    true  "Operator name"
// @Param        body        body      request.CreateJobRequest  true  "Job"
// @Success      201         {object}  response.JobResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	actor, ok := operator(c)
	if !ok {
		return
	}
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abort(c, errInvalidPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, "job", err)
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), in, actor)
	if err != nil {
		respondError(c, "job", err)
		return
	}
	slog.InfoContext(c.Request.Context(), "[job][handler] created", "job_id", job.ID, "job_number", job.JobNumber)
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob godoc
// @Summary      Get a job with its stage records
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.JobResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "job", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs godoc
// @Summary      List jobs, optionally by status
// @Tags         jobs
// @Produce      json
// @Param        status  query     string  false  "intake|inspected|quoted|approved|invoiced|delivered|cancelled"
// @Success      200     {array}   response.JobResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	status, ok := statusQuery(c)
	if !ok {
		return
	}
	jobs, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, "job", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// CancelJob godoc
// @Summary      Cancel a job that is not delivered
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        X-Operator  header    string                    true   "Operator name"
// @Param        id          path      string                    true   "Job ID"
// @Param        body        body      request.CancelJobRequest  false  "Reason"
// @Success      200         {object}  response.JobResponse
// @Failure      409         {object}  pkg.HTTPError
// @Router       /jobs/{id}/cancel [post]
func (h *JobHandler) CancelJob(c *gin.Context) {
	actor, ok := operator(c)
	if !ok {
		return
	}
	var payload request.CancelJobRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abort(c, errInvalidPayload)
			return
		}
	}

	job, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), strings.TrimSpace(payload.Reason), actor)
	if err != nil {
		respondError(c, "job", err)
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// statusQuery parses ?status=; empty means every status.
func statusQuery(c *gin.Context) (entities.JobStatus, bool) {
	raw := strings.TrimSpace(c.Query("status"))
	if raw == "" {
		return "", true
	}
	status, err := entities.ParseJobStatus(raw)
	if err != nil {
		abort(c, errInvalidJobStatus)
		return "", false
	}
	return status, true
}
