package ports

import "context"

// Storage colaborador de carga de archivos: recibe el binario y un propósito
// (aprobacion | asignacion | comprobante) y devuelve la URL pública.
// La implementación de producción sube a S3; los tests usan un fake.
type Storage interface {
	Subir(ctx context.Context, contenido []byte, nombre, proposito string) (url string, err error)
}
