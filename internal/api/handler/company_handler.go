package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// CompanyHandler exposes company registration and maintenance for
// recruiters.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Register creates a company owned by the authenticated recruiter.
//
// @Summary      Register a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      registerCompanyRequest  true  "Company name"
// @Success      201   {object}  companyEnvelope
// @Failure      400   {object}  api.errorResponse
// @Failure      401   {object}  api.errorResponse
// @Failure      409   {object}  api.errorResponse
// @Router       /api/company [post]
func (h *CompanyHandler) Register(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req registerCompanyRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.Validation(err.Error())
	}

	company, err := h.service.Register(c.Request().Context(), req.CompanyName, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, companyEnvelope{
		Success: true,
		Message: "Company registered successfully.",
		Company: toCompanyResponse(company),
	})
}

// List returns the authenticated recruiter's companies.
//
// @Summary      My companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  companiesEnvelope
// @Failure      401  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/company [get]
func (h *CompanyHandler) List(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}
	companies, err := h.service.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companiesEnvelope{Success: true, Companies: toCompaniesResponse(companies)})
}

// Get returns a single company by id.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  companyEnvelope
// @Failure      404  {object}  api.errorResponse
// @Router       /api/company/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyEnvelope{Success: true, Company: toCompanyResponse(company)})
}

// Update applies a partial update, optionally uploading a new logo. Only
// the owner may update a company.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true   "Company id"
// @Param        name         formData  string  false  "Name"
// @Param        description  formData  string  false  "Description"
// @Param        website      formData  string  false  "Website"
// @Param        location     formData  string  false  "Location"
// @Param        file         formData  file    false  "Logo"
// @Success      200  {object}  companyEnvelope
// @Failure      400  {object}  api.errorResponse
// @Failure      401  {object}  api.errorResponse
// @Failure      403  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Failure      502  {object}  api.errorResponse
// @Router       /api/company/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	logo, err := formFile(c, "file")
	if err != nil {
		return domain.Validation("invalid logo upload")
	}

	company, err := h.service.Update(c.Request().Context(), ports.UpdateCompanyInput{
		CompanyID:   c.Param("id"),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        logo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, companyEnvelope{
		Success: true,
		Message: "Company information updated.",
		Company: toCompanyResponse(company),
	})
}
