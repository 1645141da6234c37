package abonos

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

const (
	testProyectoID = "proy-001"
	testUserID     = "user-001"
	testNegID      = "neg-001"
	testViviendaID = "viv-101"
)

// almacen estado en memoria compartido por los repos falsos.
type almacen struct {
	negociaciones map[string]*entity.Negociacion
	fuentes       map[string]*entity.FuentePago
	abonos        []*entity.Abono
	viviendas     map[string]*entity.Vivienda
}

func nuevoAlmacen() *almacen {
	return &almacen{
		negociaciones: make(map[string]*entity.Negociacion),
		fuentes:       make(map[string]*entity.FuentePago),
		viviendas:     make(map[string]*entity.Vivienda),
	}
}

type fakeNegRepo struct{ st *almacen }

func (r *fakeNegRepo) Create(n *entity.Negociacion) error { r.st.negociaciones[n.ID] = n; return nil }
func (r *fakeNegRepo) GetByID(id string) (*entity.Negociacion, error) {
	return r.st.negociaciones[id], nil
}
func (r *fakeNegRepo) GetForUpdate(id string) (*entity.Negociacion, error) {
	return r.st.negociaciones[id], nil
}
func (r *fakeNegRepo) ListByProyecto(string, int, int) ([]*entity.Negociacion, error) {
	return nil, nil
}
func (r *fakeNegRepo) Update(n *entity.Negociacion) error { r.st.negociaciones[n.ID] = n; return nil }

type fakeFuenteRepo struct{ st *almacen }

func (r *fakeFuenteRepo) Create(f *entity.FuentePago) error { r.st.fuentes[f.ID] = f; return nil }
func (r *fakeFuenteRepo) GetByID(id string) (*entity.FuentePago, error) {
	return r.st.fuentes[id], nil
}
func (r *fakeFuenteRepo) GetForUpdate(id string) (*entity.FuentePago, error) {
	return r.st.fuentes[id], nil
}
func (r *fakeFuenteRepo) ListByNegociacion(negID string) ([]*entity.FuentePago, error) {
	var out []*entity.FuentePago
	for _, f := range r.st.fuentes {
		if f.NegociacionID == negID {
			out = append(out, f)
		}
	}
	return out, nil
}
func (r *fakeFuenteRepo) Update(f *entity.FuentePago) error { r.st.fuentes[f.ID] = f; return nil }
func (r *fakeFuenteRepo) Delete(id string) error            { delete(r.st.fuentes, id); return nil }

type fakeAbonoRepo struct{ st *almacen }

func (r *fakeAbonoRepo) Create(a *entity.Abono) error {
	r.st.abonos = append(r.st.abonos, a)
	return nil
}
func (r *fakeAbonoRepo) GetByID(id string) (*entity.Abono, error) {
	for _, a := range r.st.abonos {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeAbonoRepo) ListByFuente(fuenteID string) ([]*entity.Abono, error) {
	// más reciente primero, como el repo real
	var out []*entity.Abono
	for i := len(r.st.abonos) - 1; i >= 0; i-- {
		if r.st.abonos[i].FuentePagoID == fuenteID {
			out = append(out, r.st.abonos[i])
		}
	}
	return out, nil
}
func (r *fakeAbonoRepo) ListByNegociacion(string) ([]*entity.Abono, error) { return nil, nil }

type fakeViviendaRepo struct{ st *almacen }

func (r *fakeViviendaRepo) Create(v *entity.Vivienda) error { r.st.viviendas[v.ID] = v; return nil }
func (r *fakeViviendaRepo) GetByID(id string) (*entity.Vivienda, error) {
	return r.st.viviendas[id], nil
}
func (r *fakeViviendaRepo) GetForUpdate(id string) (*entity.Vivienda, error) {
	return r.st.viviendas[id], nil
}
func (r *fakeViviendaRepo) ListByProyecto(string, string, int, int) ([]*entity.Vivienda, error) {
	return nil, nil
}
func (r *fakeViviendaRepo) Update(v *entity.Vivienda) error { r.st.viviendas[v.ID] = v; return nil }

// fakeTxRunner ejecuta el callback directamente sobre los repos en memoria.
type fakeTxRunner struct{ st *almacen }

func (tr *fakeTxRunner) RunAbono(ctx context.Context, fn func(
	negRepo repository.NegociacionRepository,
	fuenteRepo repository.FuentePagoRepository,
	abonoRepo repository.AbonoRepository,
	viviendaRepo repository.ViviendaRepository,
) error) error {
	return fn(&fakeNegRepo{tr.st}, &fakeFuenteRepo{tr.st}, &fakeAbonoRepo{tr.st}, &fakeViviendaRepo{tr.st})
}

// escenario negociación activa con cuota inicial de 50M (30M recibidos) y
// crédito de 120M ya desembolsado.
func nuevoEscenario(t *testing.T) (*UseCase, *almacen) {
	t.Helper()
	st := nuevoAlmacen()
	st.negociaciones[testNegID] = &entity.Negociacion{
		ID:         testNegID,
		ProyectoID: testProyectoID,
		ViviendaID: testViviendaID,
		ValorTotal: decimal.NewFromInt(170_000_000),
		Estado:     entity.EstadoActiva,
	}
	st.viviendas[testViviendaID] = &entity.Vivienda{
		ID:         testViviendaID,
		ProyectoID: testProyectoID,
		Estado:     entity.ViviendaReservada,
	}
	st.fuentes["fp-cuota"] = &entity.FuentePago{
		ID:            "fp-cuota",
		NegociacionID: testNegID,
		Tipo:          entity.TipoCuotaInicial,
		MontoAprobado: decimal.NewFromInt(50_000_000),
		MontoRecibido: decimal.NewFromInt(30_000_000),
	}
	st.fuentes["fp-credito"] = &entity.FuentePago{
		ID:            "fp-credito",
		NegociacionID: testNegID,
		Tipo:          entity.TipoCreditoHipotecario,
		MontoAprobado: decimal.NewFromInt(120_000_000),
		MontoRecibido: decimal.NewFromInt(120_000_000),
		Entidad:       "Bancolombia",
	}
	uc := NewUseCase(&fakeTxRunner{st}, &fakeFuenteRepo{st}, &fakeAbonoRepo{st}, &fakeNegRepo{st}, nil)
	return uc, st
}

func registrar(uc *UseCase, fuenteID string, monto int64) (*dto.RegistrarAbonoResponse, error) {
	return uc.Registrar(context.Background(), testProyectoID, testUserID, dto.RegistrarAbonoRequest{
		FuentePagoID: fuenteID,
		Monto:        decimal.NewFromInt(monto),
		MetodoPago:   entity.MetodoTransferencia,
	})
}

func TestRegistrar_AbonoParcial(t *testing.T) {
	uc, st := nuevoEscenario(t)

	resp, err := registrar(uc, "fp-cuota", 5_000_000)
	require.NoError(t, err)

	assert.True(t, resp.Abono.Monto.Equal(decimal.NewFromInt(5_000_000)))
	assert.True(t, resp.Fuente.MontoRecibido.Equal(decimal.NewFromInt(35_000_000)),
		"el monto recibido debe acumular el abono")
	assert.True(t, resp.Fuente.SaldoPendiente.Equal(decimal.NewFromInt(15_000_000)))
	assert.Equal(t, entity.EstadoActiva, st.negociaciones[testNegID].Estado,
		"un abono parcial no completa la negociación")
}

func TestRegistrar_SaldoNuncaNegativo(t *testing.T) {
	uc, st := nuevoEscenario(t)

	// rachas de abonos válidos: el saldo baja pero jamás cruza cero
	for _, monto := range []int64{5_000_000, 5_000_000, 9_000_000} {
		_, err := registrar(uc, "fp-cuota", monto)
		require.NoError(t, err)
		saldo := st.fuentes["fp-cuota"].SaldoPendiente()
		assert.False(t, saldo.IsNegative(), "el saldo pendiente nunca puede ser negativo")
	}
}

func TestRegistrar_FuentePagada(t *testing.T) {
	uc, st := nuevoEscenario(t)
	st.fuentes["fp-cuota"].MontoRecibido = decimal.NewFromInt(50_000_000)

	_, err := registrar(uc, "fp-cuota", 1_000_000)
	assert.ErrorIs(t, err, domain.ErrFuentePagada,
		"una fuente con saldo cero no acepta más abonos")
}

func TestRegistrar_Sobrepago(t *testing.T) {
	uc, st := nuevoEscenario(t)

	// saldo pendiente 20M, intento de 25M
	_, err := registrar(uc, "fp-cuota", 25_000_000)
	assert.ErrorIs(t, err, domain.ErrSobrepago)
	assert.True(t, st.fuentes["fp-cuota"].MontoRecibido.Equal(decimal.NewFromInt(30_000_000)),
		"un sobrepago rechazado no debe alterar el monto recibido")
	assert.Empty(t, st.abonos, "un sobrepago rechazado no deja registro en el libro")
}

func TestRegistrar_MontoInvalido(t *testing.T) {
	uc, _ := nuevoEscenario(t)

	_, err := registrar(uc, "fp-cuota", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = registrar(uc, "fp-cuota", -100)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrar_FuenteNoAbonable(t *testing.T) {
	uc, _ := nuevoEscenario(t)

	_, err := registrar(uc, "fp-credito", 1_000_000)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo la cuota inicial recibe abonos")
}

func TestRegistrar_NegociacionCerrada(t *testing.T) {
	uc, st := nuevoEscenario(t)

	for _, estado := range []string{entity.EstadoCompletada, entity.EstadoRenuncia} {
		st.negociaciones[testNegID].Estado = estado
		_, err := registrar(uc, "fp-cuota", 1_000_000)
		assert.ErrorIs(t, err, domain.ErrNegociacionBloqueada, "estado %s", estado)
	}
}

func TestRegistrar_NegociacionSuspendida(t *testing.T) {
	uc, st := nuevoEscenario(t)
	st.negociaciones[testNegID].Estado = entity.EstadoSuspendida

	_, err := registrar(uc, "fp-cuota", 1_000_000)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una negociación suspendida no recibe abonos")
}

func TestRegistrar_CompletaNegociacion(t *testing.T) {
	uc, st := nuevoEscenario(t)

	// pago exacto del saldo restante de la única fuente pendiente
	resp, err := registrar(uc, "fp-cuota", 20_000_000)
	require.NoError(t, err)

	assert.True(t, resp.Fuente.SaldoPendiente.IsZero())
	neg := st.negociaciones[testNegID]
	assert.Equal(t, entity.EstadoCompletada, neg.Estado,
		"con todas las fuentes pagadas la negociación se completa")
	require.NotNil(t, neg.FechaCompletada)
	assert.Equal(t, entity.ViviendaVendida, st.viviendas[testViviendaID].Estado,
		"la vivienda queda vendida en la misma transacción")
}

func TestRegistrar_OtraFuentePendienteNoCompleta(t *testing.T) {
	uc, st := nuevoEscenario(t)
	st.fuentes["fp-credito"].MontoRecibido = decimal.Zero

	_, err := registrar(uc, "fp-cuota", 20_000_000)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoActiva, st.negociaciones[testNegID].Estado,
		"el crédito sin desembolsar mantiene la negociación activa")
}

func TestRegistrar_ProyectoAjeno(t *testing.T) {
	uc, _ := nuevoEscenario(t)

	_, err := uc.Registrar(context.Background(), "otro-proyecto", testUserID, dto.RegistrarAbonoRequest{
		FuentePagoID: "fp-cuota",
		Monto:        decimal.NewFromInt(1_000_000),
		MetodoPago:   entity.MetodoEfectivo,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestHistorial_MasRecientePrimero(t *testing.T) {
	uc, _ := nuevoEscenario(t)

	for _, monto := range []int64{1_000_000, 2_000_000, 3_000_000} {
		_, err := registrar(uc, "fp-cuota", monto)
		require.NoError(t, err)
	}

	hist, err := uc.Historial(context.Background(), testProyectoID, "fp-cuota")
	require.NoError(t, err)
	require.Len(t, hist, 3)
	assert.True(t, hist[0].Monto.Equal(decimal.NewFromInt(3_000_000)),
		"el historial va del más reciente al más antiguo")
	assert.True(t, hist[2].Monto.Equal(decimal.NewFromInt(1_000_000)))
}

func TestHistorial_FuenteInexistente(t *testing.T) {
	uc, _ := nuevoEscenario(t)

	_, err := uc.Historial(context.Background(), testProyectoID, "fp-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
