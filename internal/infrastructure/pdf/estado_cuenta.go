// Package pdf implementa la generación del estado de cuenta de una
// negociación para entrega al cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proyecto + Vivienda  │  Estado + Fecha de corte    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + documento + contacto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FUENTES: Tipo | Entidad | Aprobado | Recibido | Saldo | %  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ABONOS: Fecha | Método | Referencia | Monto                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Valor total / Total recibido / Saldo pendiente    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/negociacion"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
)

var _ negociacion.EstadoCuentaPDFGenerator = (*EstadoCuentaGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// formato de moneda es-CO: separador de miles con punto, sin decimales
var printerCOP = message.NewPrinter(language.MustParse("es-CO"))

// EstadoCuentaGenerator implementa negociacion.EstadoCuentaPDFGenerator con Maroto v2.
type EstadoCuentaGenerator struct{}

// NewEstadoCuentaGenerator construye el generador.
func NewEstadoCuentaGenerator() *EstadoCuentaGenerator { return &EstadoCuentaGenerator{} }

// GenerarEstadoCuenta genera el PDF y devuelve sus bytes.
func (g *EstadoCuentaGenerator) GenerarEstadoCuenta(
	_ context.Context,
	neg *entity.Negociacion,
	cliente *entity.Cliente,
	vivienda *entity.Vivienda,
	fuentes []*entity.FuentePago,
	abonos []*entity.Abono,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Cuenta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(neg, vivienda))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(fuentesHeaderRow())
	for _, r := range fuentesRows(fuentes) {
		m.AddRows(r)
	}

	if len(abonos) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(abonosHeaderRow())
		for _, r := range abonosRows(abonos) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(neg, fuentes))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(neg *entity.Negociacion, vivienda *entity.Vivienda) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vivienda: "+vivienda.Nomenclatura, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Estado: "+neg.Estado, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Fecha de corte: "+neg.UpdatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s %s   |   Email: %s   |   Tel: %s",
				cliente.TipoDocumento, cliente.NumeroDocumento,
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func fuentesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fuente de pago", 3, align.Left),
		h("Entidad", 2, align.Left),
		h("Aprobado", 2, align.Right),
		h("Recibido", 2, align.Right),
		h("Saldo", 2, align.Right),
		h("%", 1, align.Center),
	)
}

func fuentesRows(fuentes []*entity.FuentePago) []core.Row {
	result := make([]core.Row, 0, len(fuentes))
	for _, f := range fuentes {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				f.Tipo.String(),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(f.Entidad, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatPesos(f.MontoAprobado),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatPesos(f.MontoRecibido),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatPesos(f.SaldoPendiente()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				f.PorcentajeAvance().StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

func abonosHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Método", 3, align.Left),
		h("Referencia", 4, align.Left),
		h("Monto", 3, align.Right),
	)
}

func abonosRows(abonos []*entity.Abono) []core.Row {
	result := make([]core.Row, 0, len(abonos))
	for _, a := range abonos {
		monto := formatPesos(a.Monto)
		if a.Anulado {
			monto = "(anulado) " + monto
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				a.FechaPago.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				a.MetodoPago,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				nonEmpty(a.NumeroReferencia, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				monto,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalesRow(neg *entity.Negociacion, fuentes []*entity.FuentePago) core.Row {
	recibido := decimal.Zero
	for _, f := range fuentes {
		recibido = recibido.Add(f.MontoRecibido)
	}
	saldo := neg.ValorTotal.Sub(recibido)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Valor total:"),
			label("Total recibido:"),
			grandLabel("SALDO PENDIENTE:"),
		),
		col.New(3).Add(
			value(formatPesos(neg.ValorTotal)),
			value(formatPesos(recibido)),
			grandValue(formatPesos(saldo)),
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatPesos formatea un monto en pesos con separador de miles es-CO.
// Ej: 25000 → "$25.000", 1000000 → "$1.000.000"
func formatPesos(d decimal.Decimal) string {
	return "$" + printerCOP.Sprintf("%v", number.Decimal(d.Round(0).IntPart(), number.MaxFractionDigits(0)))
}
