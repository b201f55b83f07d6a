package entity

import "time"

// Tipos de cliente.
type ClientKind string

const (
	ClientKindIndividual ClientKind = "individual"
	ClientKindCompany    ClientKind = "company"
)

// RemovedMarker reemplaza los datos personales de un cliente eliminado.
const RemovedMarker = "REMOVED"

// IndividualData datos propios de una persona natural (PESEL único).
type IndividualData struct {
	FirstName string
	LastName  string
	PESEL     string
}

// CompanyData datos propios de una empresa (KRS único).
type CompanyData struct {
	CompanyName string
	KRS         string
}

// Client es una variante etiquetada: Kind indica cuál de Individual o Company está poblado.
// Nunca se borra físicamente; IsDeleted marca la baja lógica.
type Client struct {
	ID         string
	Kind       ClientKind
	Address    string
	Email      string
	Phone      string
	IsDeleted  bool
	Individual *IndividualData
	Company    *CompanyData
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName nombre legible del cliente según su tipo.
func (c *Client) DisplayName() string {
	switch c.Kind {
	case ClientKindIndividual:
		if c.Individual != nil {
			return c.Individual.FirstName + " " + c.Individual.LastName
		}
	case ClientKindCompany:
		if c.Company != nil {
			return c.Company.CompanyName
		}
	}
	return ""
}

// TaxID identificador legal (PESEL o KRS).
func (c *Client) TaxID() string {
	switch c.Kind {
	case ClientKindIndividual:
		if c.Individual != nil {
			return c.Individual.PESEL
		}
	case ClientKindCompany:
		if c.Company != nil {
			return c.Company.KRS
		}
	}
	return ""
}

// Anonymize marca el cliente como eliminado y borra sus datos de contacto.
// Los identificadores legales se conservan para no reutilizarlos.
func (c *Client) Anonymize(now time.Time) {
	c.IsDeleted = true
	c.Address = RemovedMarker
	c.Email = RemovedMarker
	c.Phone = RemovedMarker
	if c.Individual != nil {
		c.Individual.FirstName = RemovedMarker
		c.Individual.LastName = RemovedMarker
	}
	if c.Company != nil {
		c.Company.CompanyName = RemovedMarker
	}
	c.UpdatedAt = now
}
