package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Virag-Koradiya/ElevateU/internal/api/metrics"
	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// ApplicationHandler exposes the apply/review workflow.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply files an application for a posting on behalf of the authenticated
// seeker. Applying twice to the same posting is rejected.
//
// @Summary      Apply to a job
// @Tags         applications
// @Produce      json
// @Param        id   path  string  true  "job id"
// @Success      201  {object}  applicationEnvelope
// @Failure      400  {object}  api.errorResponse
// @Failure      401  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/application/apply/{id} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	application, err := h.service.Apply(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()

	return c.JSON(http.StatusCreated, applicationEnvelope{
		Success:     true,
		Message:     "Job applied successfully.",
		Application: toApplicationResponse(application),
	})
}

// ListMine returns the authenticated seeker's application history.
//
// @Summary      My applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  appliedJobsEnvelope
// @Failure      401  {object}  api.errorResponse
// @Router       /api/application [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	applied, err := h.service.ListByApplicant(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appliedJobsEnvelope{
		Success:      true,
		Applications: toAppliedJobsResponse(applied),
	})
}

// Applicants lists applications to one posting. Only the posting's creator
// may review them.
//
// @Summary      Applicants for a job
// @Tags         applications
// @Produce      json
// @Param        id   path  string  true  "job id"
// @Success      200  {object}  applicantsEnvelope
// @Failure      401  {object}  api.errorResponse
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/application/applicants/{id} [get]
func (h *ApplicationHandler) Applicants(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	applicants, err := h.service.Applicants(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicantsEnvelope{
		Success:    true,
		Applicants: toApplicantsResponse(applicants),
	})
}

// UpdateStatus moves an application to accepted or rejected.
//
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "application id"
// @Param        status  body  updateStatusRequest  true  "new status"
// @Success      200  {object}  applicationEnvelope
// @Failure      400  {object}  api.errorResponse
// @Failure      401  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/application/status/{id} [patch]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return domain.Validation("Status must be one of pending, accepted or rejected.")
	}

	application, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicationEnvelope{
		Success:     true,
		Message:     "Status updated successfully.",
		Application: toApplicationResponse(application),
	})
}
