package negociacion

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

// PDFUseCase genera el estado de cuenta (PDF) de una negociación: fuentes de
// pago con su avance y el historial de abonos de la cuota inicial.
type PDFUseCase struct {
	negRepo      repository.NegociacionRepository
	fuenteRepo   repository.FuentePagoRepository
	abonoRepo    repository.AbonoRepository
	clienteRepo  repository.ClienteRepository
	viviendaRepo repository.ViviendaRepository
	generator    EstadoCuentaPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	negRepo repository.NegociacionRepository,
	fuenteRepo repository.FuentePagoRepository,
	abonoRepo repository.AbonoRepository,
	clienteRepo repository.ClienteRepository,
	viviendaRepo repository.ViviendaRepository,
	generator EstadoCuentaPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		negRepo:      negRepo,
		fuenteRepo:   fuenteRepo,
		abonoRepo:    abonoRepo,
		clienteRepo:  clienteRepo,
		viviendaRepo: viviendaRepo,
		generator:    generator,
	}
}

// DescargarEstadoCuenta recupera la negociación con sus fuentes y abonos y
// genera el PDF. Retorna (pdfBytes, filename, nil) en éxito.
func (uc *PDFUseCase) DescargarEstadoCuenta(ctx context.Context, proyectoID, negID string) ([]byte, string, error) {
	neg, err := uc.negRepo.GetByID(negID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener negociación: %w", err)
	}
	if neg == nil {
		return nil, "", domain.ErrNotFound
	}
	if neg.ProyectoID != proyectoID {
		return nil, "", domain.ErrForbidden
	}

	cliente, err := uc.clienteRepo.GetByID(neg.ClienteID)
	if err != nil || cliente == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	vivienda, err := uc.viviendaRepo.GetByID(neg.ViviendaID)
	if err != nil || vivienda == nil {
		return nil, "", fmt.Errorf("pdf: obtener vivienda: %w", err)
	}
	fuentes, err := uc.fuenteRepo.ListByNegociacion(negID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener fuentes: %w", err)
	}
	abonos, err := uc.abonoRepo.ListByNegociacion(negID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener abonos: %w", err)
	}

	pdfBytes, err := uc.generator.GenerarEstadoCuenta(ctx, neg, cliente, vivienda, fuentes, abonos)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("estado_cuenta_%s.pdf", vivienda.Nomenclatura)
	return pdfBytes, filename, nil
}
