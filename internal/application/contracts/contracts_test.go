package contracts_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/revenue-api/internal/application/contracts"
	"github.com/jhoicas/revenue-api/internal/application/dto"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/internal/domain/entity"
	"github.com/jhoicas/revenue-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	repos     memory.Repositories
	contracts *contracts.ContractUseCase
	payments  *contracts.PaymentUseCase
	client    *entity.Client
	product   *entity.SoftwareProduct
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repositories()
	tx := memory.NewTxRunner(store)
	now := time.Now()

	f := &fixture{
		repos:     repos,
		contracts: contracts.NewContractUseCase(tx, repos.Clients, repos.Software, repos.Discounts, repos.Contracts, repos.Payments, nil),
		payments:  contracts.NewPaymentUseCase(tx, repos.Contracts, repos.Payments),
		now:       now,
	}
	f.client = f.addIndividual(t, "90010112345")
	f.product = f.addProduct(t, "Ledger", "2.1")
	return f
}

func (f *fixture) addIndividual(t *testing.T, pesel string) *entity.Client {
	t.Helper()
	c := &entity.Client{
		ID:         uuid.New().String(),
		Kind:       entity.ClientKindIndividual,
		Address:    "ul. Prosta 1, Warszawa",
		Email:      "jan@example.com",
		Phone:      "+48 600 000 000",
		Individual: &entity.IndividualData{FirstName: "Jan", LastName: "Kowalski", PESEL: pesel},
		CreatedAt:  f.now,
		UpdatedAt:  f.now,
	}
	require.NoError(t, f.repos.Clients.Create(context.Background(), c))
	return c
}

func (f *fixture) addProduct(t *testing.T, name, version string) *entity.SoftwareProduct {
	t.Helper()
	p := &entity.SoftwareProduct{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "Software de contabilidad",
		Version:     version,
		Category:    "finance",
		CreatedAt:   f.now,
		UpdatedAt:   f.now,
	}
	require.NoError(t, f.repos.Software.Create(context.Background(), p))
	return p
}

func (f *fixture) addDiscount(t *testing.T, productID, pct string) {
	t.Helper()
	d := &entity.Discount{
		ID:         uuid.New().String(),
		ProductID:  productID,
		Name:       "Promo " + pct,
		Percentage: decimal.RequireFromString(pct),
		Start:      f.now.AddDate(0, 0, -5),
		End:        f.now.AddDate(0, 0, 5),
		CreatedAt:  f.now,
	}
	require.NoError(t, f.repos.Discounts.Create(context.Background(), d))
}

func (f *fixture) request(product *entity.SoftwareProduct, years int) dto.CreateContractRequest {
	return dto.CreateContractRequest{
		ClientID:              f.client.ID,
		ProductID:             product.ID,
		SoftwareVersion:       product.Version,
		StartDate:             f.now.Add(-24 * time.Hour),
		EndDate:               f.now.Add(9 * 24 * time.Hour),
		SupportExtensionYears: years,
	}
}

func (f *fixture) createContract(t *testing.T, product *entity.SoftwareProduct, years int) *dto.ContractResponse {
	t.Helper()
	out, err := f.contracts.Create(context.Background(), f.request(product, years))
	require.NoError(t, err)
	return out
}

func (f *fixture) pay(contractID, amount string) (*dto.PaymentResponse, error) {
	return f.payments.Add(context.Background(), dto.AddPaymentRequest{
		ContractID:  contractID,
		Amount:      decimal.RequireFromString(amount),
		PaymentDate: f.now,
	})
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtenido %s", want, got.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación de contratos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateContract_PrecioBaseSinDescuentos(t *testing.T) {
	f := newFixture(t)

	out := f.createContract(t, f.product, 0)

	assertDecimal(t, "10000", out.Price)
	assert.True(t, out.IsActive, "un contrato nuevo debe quedar activo")
	assert.False(t, out.IsSigned, "un contrato nuevo no está firmado")
	assert.Equal(t, f.product.Version, out.SoftwareVersion)
}

func TestCreateContract_DuracionFueraDeRango(t *testing.T) {
	f := newFixture(t)
	for _, days := range []int{2, 31} {
		req := f.request(f.product, 0)
		req.EndDate = req.StartDate.Add(time.Duration(days) * 24 * time.Hour)

		_, err := f.contracts.Create(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrInvalidDuration, "días=%d", days)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateContract_AniosSoporteInvalidos(t *testing.T) {
	f := newFixture(t)

	_, err := f.contracts.Create(context.Background(), f.request(f.product, 4))

	assert.ErrorIs(t, err, domain.ErrInvalidSupportYears)
}

func TestCreateContract_DuracionSeValidaAntesQueSoporte(t *testing.T) {
	f := newFixture(t)
	req := f.request(f.product, 9)
	req.EndDate = req.StartDate.Add(24 * time.Hour)

	_, err := f.contracts.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}

func TestCreateContract_ClienteInexistenteOEliminado(t *testing.T) {
	f := newFixture(t)

	req := f.request(f.product, 0)
	req.ClientID = uuid.New().String()
	_, err := f.contracts.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	f.client.Anonymize(f.now)
	require.NoError(t, f.repos.Clients.Update(context.Background(), f.client))
	_, err = f.contracts.Create(context.Background(), f.request(f.product, 0))
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestCreateContract_VersionDistintaEsProductoInexistente(t *testing.T) {
	f := newFixture(t)
	req := f.request(f.product, 0)
	req.SoftwareVersion = "9.9"

	_, err := f.contracts.Create(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateContract_DuplicadoActivoRetornaConflicto(t *testing.T) {
	f := newFixture(t)
	first := f.createContract(t, f.product, 0)

	_, err := f.contracts.Create(context.Background(), f.request(f.product, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicateActiveContract)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Tras la baja del primero se permite uno nuevo.
	require.NoError(t, f.contracts.Delete(context.Background(), first.ID))
	_, err = f.contracts.Create(context.Background(), f.request(f.product, 1))
	assert.NoError(t, err)
}

func TestCreateContract_MejorDescuentoYLealtad(t *testing.T) {
	f := newFixture(t)

	// Cliente leal: un contrato firmado previo sobre otro producto.
	other := f.addProduct(t, "Payroll", "1.0")
	signed := f.createContract(t, other, 0)
	_, err := f.pay(signed.ID, "10000")
	require.NoError(t, err)

	f.addDiscount(t, f.product.ID, "10")
	f.addDiscount(t, f.product.ID, "20")

	out := f.createContract(t, f.product, 2)

	// 12000 - 20% = 9600; 9600 - 5% = 9120
	assertDecimal(t, "9120", out.Price)
}

func TestCreateContract_SoloDescuentoSinLealtad(t *testing.T) {
	f := newFixture(t)
	f.addDiscount(t, f.product.ID, "20")

	out := f.createContract(t, f.product, 2)

	assertDecimal(t, "9600", out.Price)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja y consulta de contratos
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteContract_SinFirmarQuedaInactivoYConservaPagos(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)
	_, err := f.pay(c.ID, "2500")
	require.NoError(t, err)

	require.NoError(t, f.contracts.Delete(context.Background(), c.ID))

	got, err := f.contracts.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assertDecimal(t, "10000", got.Price)

	payments, err := f.payments.ListByContract(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestDeleteContract_FirmadoRetornaConflicto(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)
	_, err := f.pay(c.ID, "10000")
	require.NoError(t, err)

	err = f.contracts.Delete(context.Background(), c.ID)

	assert.ErrorIs(t, err, domain.ErrCannotDeleteSigned)
	got, _ := f.contracts.GetByID(context.Background(), c.ID)
	assert.True(t, got.IsActive, "un contrato firmado no se desactiva")
}

func TestDeleteContract_Inexistente(t *testing.T) {
	f := newFixture(t)

	err := f.contracts.Delete(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrContractNotFound)
}

func TestListByClient_DevuelveContratosDelCliente(t *testing.T) {
	f := newFixture(t)
	f.createContract(t, f.product, 0)
	f.createContract(t, f.addProduct(t, "CRM", "3.0"), 1)

	list, err := f.contracts.ListByClient(context.Background(), f.client.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.contracts.ListByClient(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddPayment_PagoCompletoFirmaContrato(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)

	_, err := f.pay(c.ID, "4000")
	require.NoError(t, err)
	got, _ := f.contracts.GetByID(context.Background(), c.ID)
	assert.False(t, got.IsSigned, "un pago parcial no firma")

	_, err = f.pay(c.ID, "6000")
	require.NoError(t, err)
	got, _ = f.contracts.GetByID(context.Background(), c.ID)
	assert.True(t, got.IsSigned, "4000 + 6000 = precio, debe quedar firmado")
}

func TestAddPayment_SobrepagoRechazado(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)
	_, err := f.pay(c.ID, "4000")
	require.NoError(t, err)

	_, err = f.pay(c.ID, "7000")

	assert.ErrorIs(t, err, domain.ErrOverpayRejected)
	payments, _ := f.payments.ListByContract(context.Background(), c.ID)
	assert.Len(t, payments, 1, "el pago rechazado no se guarda")
	got, _ := f.contracts.GetByID(context.Background(), c.ID)
	assert.False(t, got.IsSigned)
}

func TestAddPayment_FueraDeVigencia(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)

	_, err := f.payments.Add(context.Background(), dto.AddPaymentRequest{
		ContractID:  c.ID,
		Amount:      decimal.NewFromInt(100),
		PaymentDate: c.EndDate.Add(time.Minute),
	})

	assert.ErrorIs(t, err, domain.ErrPaymentOutOfWindow)
}

func TestAddPayment_ContratoInactivo(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)
	require.NoError(t, f.contracts.Delete(context.Background(), c.ID))

	_, err := f.pay(c.ID, "100")

	assert.ErrorIs(t, err, domain.ErrContractInactive)
}

func TestAddPayment_MontoNoPositivo(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)

	for _, amount := range []string{"0", "-10"} {
		_, err := f.pay(c.ID, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto=%s", amount)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestAddPayment_MasDeDosDecimales(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)

	for _, amount := range []string{"0.001", "9999.999"} {
		_, err := f.pay(c.ID, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto=%s", amount)
	}
	payments, _ := f.payments.ListByContract(context.Background(), c.ID)
	assert.Empty(t, payments)

	// Ceros de más a la derecha no cambian el valor.
	_, err := f.pay(c.ID, "4000.500")
	require.NoError(t, err)
	_, err = f.pay(c.ID, "5999.50")
	require.NoError(t, err)
	got, _ := f.contracts.GetByID(context.Background(), c.ID)
	assert.True(t, got.IsSigned)
}

func TestAddPayment_ContratoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.pay(uuid.New().String(), "100")

	assert.ErrorIs(t, err, domain.ErrContractNotFound)
}

func TestAddPayment_ConcurrentesNoSuperanElPrecio(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.pay(c.ID, "2000"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok, "solo 5 pagos de 2000 caben en 10000")
	total, err := f.repos.Payments.SumByContract(context.Background(), c.ID)
	require.NoError(t, err)
	assertDecimal(t, "10000", total)
	got, _ := f.contracts.GetByID(context.Background(), c.ID)
	assert.True(t, got.IsSigned)
}

func TestGetPayment_InexistenteYExistente(t *testing.T) {
	f := newFixture(t)
	c := f.createContract(t, f.product, 0)
	p, err := f.pay(c.ID, "1500.50")
	require.NoError(t, err)

	got, err := f.payments.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assertDecimal(t, "1500.50", got.Amount)
	assert.False(t, got.IsRefunded)

	_, err = f.payments.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
