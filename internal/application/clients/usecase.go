package clients

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
)

// ClientUseCase casos de uso del registro de clientes (personas y empresas).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// CreateIndividual crea una persona natural. Devuelve domain.ErrDuplicate si el PESEL ya existe.
func (uc *ClientUseCase) CreateIndividual(ctx context.Context, in dto.CreateIndividualRequest) (*dto.IndividualResponse, error) {
	existing, err := uc.repo.GetByPESEL(ctx, in.PESEL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:      uuid.New().String(),
		Kind:    entity.ClientKindIndividual,
		Address: in.Address,
		Email:   in.Email,
		Phone:   in.Phone,
		Individual: &entity.IndividualData{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			PESEL:     in.PESEL,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toIndividualResponse(client), nil
}

// GetIndividual devuelve una persona no eliminada.
func (uc *ClientUseCase) GetIndividual(ctx context.Context, id string) (*dto.IndividualResponse, error) {
	client, err := uc.get(ctx, id, entity.ClientKindIndividual)
	if err != nil {
		return nil, err
	}
	return toIndividualResponse(client), nil
}

// UpdateIndividual reemplaza nombres y contacto. El PESEL no cambia.
func (uc *ClientUseCase) UpdateIndividual(ctx context.Context, id string, in dto.UpdateIndividualRequest) (*dto.IndividualResponse, error) {
	client, err := uc.get(ctx, id, entity.ClientKindIndividual)
	if err != nil {
		return nil, err
	}
	client.Individual.FirstName = in.FirstName
	client.Individual.LastName = in.LastName
	client.Address = in.Address
	client.Email = in.Email
	client.Phone = in.Phone
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toIndividualResponse(client), nil
}

// DeleteIndividual baja lógica: los datos personales pasan a "REMOVED".
func (uc *ClientUseCase) DeleteIndividual(ctx context.Context, id string) error {
	return uc.softDelete(ctx, id, entity.ClientKindIndividual)
}

// CreateCompany crea una empresa. Devuelve domain.ErrDuplicate si el KRS ya existe.
func (uc *ClientUseCase) CreateCompany(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByKRS(ctx, in.KRS)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:      uuid.New().String(),
		Kind:    entity.ClientKindCompany,
		Address: in.Address,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: &entity.CompanyData{
			CompanyName: in.CompanyName,
			KRS:         in.KRS,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toCompanyResponse(client), nil
}

// GetCompany devuelve una empresa no eliminada.
func (uc *ClientUseCase) GetCompany(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	client, err := uc.get(ctx, id, entity.ClientKindCompany)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(client), nil
}

// UpdateCompany reemplaza razón social y contacto. El KRS no cambia.
func (uc *ClientUseCase) UpdateCompany(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	client, err := uc.get(ctx, id, entity.ClientKindCompany)
	if err != nil {
		return nil, err
	}
	client.Company.CompanyName = in.CompanyName
	client.Address = in.Address
	client.Email = in.Email
	client.Phone = in.Phone
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toCompanyResponse(client), nil
}

// DeleteCompany baja lógica, igual que DeleteIndividual.
func (uc *ClientUseCase) DeleteCompany(ctx context.Context, id string) error {
	return uc.softDelete(ctx, id, entity.ClientKindCompany)
}

// ListAll devuelve personas y empresas no eliminadas.
func (uc *ClientUseCase) ListAll(ctx context.Context) (*dto.ClientListResponse, error) {
	individuals, err := uc.repo.ListActive(ctx, entity.ClientKindIndividual)
	if err != nil {
		return nil, err
	}
	companies, err := uc.repo.ListActive(ctx, entity.ClientKindCompany)
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{
		Individuals: make([]*dto.IndividualResponse, 0, len(individuals)),
		Companies:   make([]*dto.CompanyResponse, 0, len(companies)),
	}
	for _, c := range individuals {
		out.Individuals = append(out.Individuals, toIndividualResponse(c))
	}
	for _, c := range companies {
		out.Companies = append(out.Companies, toCompanyResponse(c))
	}
	return out, nil
}

func (uc *ClientUseCase) get(ctx context.Context, id string, kind entity.ClientKind) (*entity.Client, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.IsDeleted || client.Kind != kind {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

func (uc *ClientUseCase) softDelete(ctx context.Context, id string, kind entity.ClientKind) error {
	client, err := uc.get(ctx, id, kind)
	if err != nil {
		return err
	}
	client.Anonymize(time.Now())
	return uc.repo.Update(ctx, client)
}

func toIndividualResponse(c *entity.Client) *dto.IndividualResponse {
	out := &dto.IndividualResponse{
		ID:        c.ID,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
	if c.Individual != nil {
		out.FirstName = c.Individual.FirstName
		out.LastName = c.Individual.LastName
		out.PESEL = c.Individual.PESEL
	}
	return out
}

func toCompanyResponse(c *entity.Client) *dto.CompanyResponse {
	out := &dto.CompanyResponse{
		ID:        c.ID,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
	if c.Company != nil {
		out.CompanyName = c.Company.CompanyName
		out.KRS = c.Company.KRS
	}
	return out
}
