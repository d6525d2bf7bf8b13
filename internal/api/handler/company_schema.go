package handler

import "github.com/Virag-Koradiya/ElevateU/internal/core/domain"

type registerCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
}

// updateCompanyRequest uses pointers so an omitted field and an explicit
// empty string stay distinguishable.
type updateCompanyRequest struct {
	Name        *string `form:"name"`
	Description *string `form:"description"`
	Website     *string `form:"website"`
	Location    *string `form:"location"`
}

type companyEnvelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Company *companyResponse `json:"company,omitempty"`
}

type companiesEnvelope struct {
	Success   bool              `json:"success"`
	Companies []companyResponse `json:"companies"`
}

func toCompaniesResponse(companies []domain.Company) []companyResponse {
	out := make([]companyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, *toCompanyResponse(&companies[i]))
	}
	return out
}
