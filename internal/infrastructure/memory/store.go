// Package memory implementa los repositorios sobre mapas en proceso.
// Se usa con STORAGE_DRIVER=memory y como doble de prueba de los casos de uso.
package memory

import (
	"sync"

	"github.com/jhoicas/revenue-api/internal/domain/entity"
)

// Store guarda todas las tablas. mu protege los mapas; txMu serializa las transacciones
// de RunContracts, equivalente al bloqueo de fila de PostgreSQL pero a nivel de store.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	clients   map[string]*entity.Client
	products  map[string]*entity.SoftwareProduct
	discounts map[string]*entity.Discount
	contracts map[string]*entity.Contract
	payments  map[string]*entity.ContractPayment
	users     map[string]*entity.User
	tokens    map[string]*entity.RefreshToken
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		clients:   make(map[string]*entity.Client),
		products:  make(map[string]*entity.SoftwareProduct),
		discounts: make(map[string]*entity.Discount),
		contracts: make(map[string]*entity.Contract),
		payments:  make(map[string]*entity.ContractPayment),
		users:     make(map[string]*entity.User),
		tokens:    make(map[string]*entity.RefreshToken),
	}
}

// Repositories construye todos los adaptadores sobre el mismo store.
func (s *Store) Repositories() Repositories {
	return Repositories{
		Clients:       &ClientRepo{s: s},
		Software:      &SoftwareRepo{s: s},
		Discounts:     &DiscountRepo{s: s},
		Contracts:     &ContractRepo{s: s},
		Payments:      &PaymentRepo{s: s},
		Users:         &UserRepo{s: s},
		RefreshTokens: &RefreshTokenRepo{s: s},
	}
}

// Repositories agrupa los adaptadores en memoria.
type Repositories struct {
	Clients       *ClientRepo
	Software      *SoftwareRepo
	Discounts     *DiscountRepo
	Contracts     *ContractRepo
	Payments      *PaymentRepo
	Users         *UserRepo
	RefreshTokens *RefreshTokenRepo
}

func cloneClient(c *entity.Client) *entity.Client {
	out := *c
	if c.Individual != nil {
		ind := *c.Individual
		out.Individual = &ind
	}
	if c.Company != nil {
		comp := *c.Company
		out.Company = &comp
	}
	return &out
}

func cloneContract(c *entity.Contract) *entity.Contract {
	out := *c
	return &out
}

func clonePayment(p *entity.ContractPayment) *entity.ContractPayment {
	out := *p
	return &out
}
