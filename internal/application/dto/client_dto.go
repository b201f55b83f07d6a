package dto

import "time"

// CreateIndividualRequest body para POST /api/clients/individual.
type CreateIndividualRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Address   string `json:"address" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"required,max=50"`
	PESEL     string `json:"pesel" validate:"required,pesel"`
}

// UpdateIndividualRequest body para PUT /api/clients/individual/:id. El PESEL no se modifica.
type UpdateIndividualRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Address   string `json:"address" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Phone     string `json:"phone" validate:"required,max=50"`
}

// IndividualResponse persona natural en respuestas.
type IndividualResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	PESEL     string    `json:"pesel"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCompanyRequest body para POST /api/clients/company.
type CreateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email,max=100"`
	Phone       string `json:"phone" validate:"required,max=50"`
	KRS         string `json:"krs" validate:"required,krs"`
}

// UpdateCompanyRequest body para PUT /api/clients/company/:id. El KRS no se modifica.
type UpdateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email,max=100"`
	Phone       string `json:"phone" validate:"required,max=50"`
}

// CompanyResponse empresa en respuestas.
type CompanyResponse struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	KRS         string    `json:"krs"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientListResponse listado combinado de GET /api/clients (solo clientes no eliminados).
type ClientListResponse struct {
	Individuals []*IndividualResponse `json:"individuals"`
	Companies   []*CompanyResponse    `json:"companies"`
}
