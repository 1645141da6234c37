package documentos

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

const (
	testProyectoID = "proy-001"
	testUserID     = "user-001"
	testNegID      = "neg-001"
)

type fakeDocRepo struct {
	docs      map[string]*entity.Documento
	versiones map[string]*entity.DocumentoVersion
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{
		docs:      make(map[string]*entity.Documento),
		versiones: make(map[string]*entity.DocumentoVersion),
	}
}

func (r *fakeDocRepo) Create(d *entity.Documento) error { r.docs[d.ID] = d; return nil }
func (r *fakeDocRepo) GetByID(id string) (*entity.Documento, error) {
	return r.docs[id], nil
}
func (r *fakeDocRepo) ListByNegociacion(negID string) ([]*entity.Documento, error) {
	var out []*entity.Documento
	for _, d := range r.docs {
		if d.NegociacionID == negID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeDocRepo) CreateVersion(v *entity.DocumentoVersion) error {
	cp := *v
	r.versiones[v.ID] = &cp
	return nil
}
func (r *fakeDocRepo) GetVersion(id string) (*entity.DocumentoVersion, error) {
	if v, ok := r.versiones[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeDocRepo) GetVersionActual(docID string) (*entity.DocumentoVersion, error) {
	for _, v := range r.versiones {
		if v.DocumentoID == docID && v.EsActual {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeDocRepo) ListVersiones(docID string) ([]*entity.DocumentoVersion, error) {
	var out []*entity.DocumentoVersion
	for _, v := range r.versiones {
		if v.DocumentoID == docID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeDocRepo) UpdateVersion(v *entity.DocumentoVersion) error {
	cp := *v
	r.versiones[v.ID] = &cp
	return nil
}

type fakeNegRepo struct{ negs map[string]*entity.Negociacion }

func (r *fakeNegRepo) Create(n *entity.Negociacion) error { r.negs[n.ID] = n; return nil }
func (r *fakeNegRepo) GetByID(id string) (*entity.Negociacion, error) {
	return r.negs[id], nil
}
func (r *fakeNegRepo) GetForUpdate(id string) (*entity.Negociacion, error) {
	return r.negs[id], nil
}
func (r *fakeNegRepo) ListByProyecto(string, int, int) ([]*entity.Negociacion, error) {
	return nil, nil
}
func (r *fakeNegRepo) Update(n *entity.Negociacion) error { r.negs[n.ID] = n; return nil }

// fakeStorage devuelve URLs predecibles sin tocar la red.
type fakeStorage struct{ subidas int }

func (s *fakeStorage) Subir(_ context.Context, _ []byte, nombre, proposito string) (string, error) {
	s.subidas++
	return fmt.Sprintf("https://cdn.test/%s/%d-%s", proposito, s.subidas, nombre), nil
}

func nuevoUseCase(t *testing.T) (*UseCase, *fakeDocRepo, *fakeStorage) {
	t.Helper()
	docRepo := newFakeDocRepo()
	negRepo := &fakeNegRepo{negs: map[string]*entity.Negociacion{
		testNegID: {
			ID:         testNegID,
			ProyectoID: testProyectoID,
			ValorTotal: decimal.NewFromInt(170_000_000),
			Estado:     entity.EstadoCierreFinanciero,
		},
	}}
	st := &fakeStorage{}
	return NewUseCase(docRepo, negRepo, st, nil), docRepo, st
}

func subir(t *testing.T, uc *UseCase, documentoID string) *dto.DocumentoResponse {
	t.Helper()
	resp, err := uc.SubirVersion(context.Background(), testProyectoID, testUserID, testNegID, documentoID,
		[]byte("pdf"), dto.SubirVersionRequest{Nombre: "carta.pdf", Proposito: entity.PropositoAprobacion})
	require.NoError(t, err)
	return resp
}

func TestSubirVersion_PrimeraVersion(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)

	resp := subir(t, uc, "")

	require.Len(t, resp.Versiones, 1)
	v := resp.Versiones[0]
	assert.Equal(t, 1, v.Numero)
	assert.Equal(t, entity.VersionValida, v.EstadoVersion)
	assert.True(t, v.EsActual)
	assert.Contains(t, v.ContenidoURL, "aprobacion/")
}

func TestSubirVersion_SupersedeLaActual(t *testing.T) {
	uc, docRepo, _ := nuevoUseCase(t)

	primera := subir(t, uc, "")
	segunda := subir(t, uc, primera.ID)

	require.Len(t, segunda.Versiones, 1)
	assert.Equal(t, 2, segunda.Versiones[0].Numero)
	assert.True(t, segunda.Versiones[0].EsActual)
	assert.Equal(t, primera.Versiones[0].ID, segunda.Versiones[0].CorrigeVersionID)

	anterior, err := docRepo.GetVersion(primera.Versiones[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VersionSupersedida, anterior.EstadoVersion)
	assert.False(t, anterior.EsActual, "solo una versión puede ser la actual")
}

func TestSubirVersion_ContenidoVacio(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)

	_, err := uc.SubirVersion(context.Background(), testProyectoID, testUserID, testNegID, "",
		nil, dto.SubirVersionRequest{Nombre: "carta.pdf", Proposito: entity.PropositoAprobacion})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarcarVersion_Erronea(t *testing.T) {
	uc, docRepo, _ := nuevoUseCase(t)
	doc := subir(t, uc, "")
	versionID := doc.Versiones[0].ID

	resp, err := uc.MarcarVersion(context.Background(), testProyectoID, testUserID, versionID,
		dto.MarcarVersionRequest{Estado: entity.VersionErronea, Motivo: "monto aprobado no coincide con la carta"})
	require.NoError(t, err)

	assert.Equal(t, entity.VersionErronea, resp.EstadoVersion)
	assert.False(t, resp.EsActual)

	actual, err := docRepo.GetVersionActual(doc.ID)
	require.NoError(t, err)
	assert.Nil(t, actual, "el documento queda sin versión vigente")
}

func TestMarcarVersion_MotivoInsuficiente(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)
	doc := subir(t, uc, "")

	for _, motivo := range []string{"", "   ", "corta", "  ocho  "} {
		_, err := uc.MarcarVersion(context.Background(), testProyectoID, testUserID, doc.Versiones[0].ID,
			dto.MarcarVersionRequest{Estado: entity.VersionObsoleta, Motivo: motivo})
		assert.ErrorIs(t, err, domain.ErrMotivoRequerido, "motivo %q", motivo)
	}
}

func TestMarcarVersion_SoloLaActual(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)
	primera := subir(t, uc, "")
	subir(t, uc, primera.ID)

	_, err := uc.MarcarVersion(context.Background(), testProyectoID, testUserID, primera.Versiones[0].ID,
		dto.MarcarVersionRequest{Estado: entity.VersionErronea, Motivo: "documento escaneado ilegible"})
	assert.ErrorIs(t, err, domain.ErrVersionNoActual)
}

func TestRestaurar_CreaVersionNueva(t *testing.T) {
	uc, docRepo, _ := nuevoUseCase(t)
	primera := subir(t, uc, "")
	subir(t, uc, primera.ID)
	subir(t, uc, primera.ID)

	resp, err := uc.Restaurar(context.Background(), testProyectoID, testUserID, primera.Versiones[0].ID)
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Numero, "restaurar crea la versión siguiente, no reescribe la historia")
	assert.True(t, resp.EsActual)
	assert.Equal(t, primera.Versiones[0].ID, resp.CorrigeVersionID)
	assert.Equal(t, primera.Versiones[0].ContenidoURL, resp.ContenidoURL,
		"la versión restaurada apunta al contenido original")

	versiones, err := docRepo.ListVersiones(primera.ID)
	require.NoError(t, err)
	require.Len(t, versiones, 4)
	actuales := 0
	for _, v := range versiones {
		if v.EsActual {
			actuales++
		}
	}
	assert.Equal(t, 1, actuales, "exactamente una versión actual por documento")
}

func TestRestaurar_VersionVigente(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)
	doc := subir(t, uc, "")

	_, err := uc.Restaurar(context.Background(), testProyectoID, testUserID, doc.Versiones[0].ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDocumentos_ProyectoAjeno(t *testing.T) {
	uc, _, _ := nuevoUseCase(t)
	doc := subir(t, uc, "")

	_, err := uc.MarcarVersion(context.Background(), "otro-proyecto", testUserID, doc.Versiones[0].ID,
		dto.MarcarVersionRequest{Estado: entity.VersionErronea, Motivo: "motivo suficientemente largo"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ListByNegociacion(context.Background(), "otro-proyecto", testNegID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
