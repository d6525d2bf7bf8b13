package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Virag-Koradiya/ElevateU/internal/api/metrics"
	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// JobHandler exposes posting CRUD and search.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create posts a new job on behalf of the authenticated recruiter.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Posting details"
// @Success      201   {object}  jobEnvelope
// @Failure      400   {object}  api.errorResponse
// @Failure      401   {object}  api.errorResponse
// @Failure      403   {object}  api.errorResponse
// @Failure      404   {object}  api.errorResponse
// @Router       /api/job [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.Validation(err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), ports.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Experience:   req.Experience,
		Position:     req.Position,
		CompanyID:    req.CompanyID,
		CreatedBy:    userID,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.JobType).Inc()

	return c.JSON(http.StatusCreated, jobEnvelope{
		Success: true,
		Message: "New job created successfully.",
		Job:     toJobResponse(job, nil),
	})
}

// Search lists postings matching ?keyword=, newest first.
//
// @Summary      Search jobs
// @Tags         jobs
// @Produce      json
// @Param        keyword  query     string  false  "Case-insensitive keyword"
// @Success      200      {object}  jobsEnvelope
// @Failure      404      {object}  api.errorResponse
// @Router       /api/job [get]
func (h *JobHandler) Search(c echo.Context) error {
	results, err := h.service.Search(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobsEnvelope{Success: true, Jobs: toJobsResponse(results)})
}

// Get returns a single posting by id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobEnvelope
// @Failure      404  {object}  api.errorResponse
// @Router       /api/job/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobEnvelope{Success: true, Job: toJobResponse(job, nil)})
}

// Mine lists the authenticated recruiter's own postings.
//
// @Summary      My postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  jobsEnvelope
// @Failure      401  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/job/admin [get]
func (h *JobHandler) Mine(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}
	results, err := h.service.ListByCreator(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobsEnvelope{Success: true, Jobs: toJobsResponse(results)})
}

// Delete removes a posting. The service enforces that only the creator may
// do so; an authenticated non-owner gets 403.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobEnvelope
// @Failure      401  {object}  api.errorResponse
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/job/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobEnvelope{Success: true, Message: "Job deleted successfully."})
}
