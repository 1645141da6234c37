// Package storage implementa el colaborador de carga de archivos sobre S3.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/ports"
	"github.com/jhoicas/Inmobiliaria-api/pkg/config"
)

var _ ports.Storage = (*S3Storage)(nil)

// S3Storage sube documentos a un bucket S3 y devuelve la URL pública.
// Las claves se organizan por propósito y fecha:
// documentos/<proposito>/<año>/<mes>/<uuid>-<nombre>.
type S3Storage struct {
	uploader *manager.Uploader
	bucket   string
	baseURL  string
}

// NewS3Storage crea el cliente S3 con la cadena de credenciales por defecto
// del SDK (env, perfil, rol de instancia).
func NewS3Storage(ctx context.Context, cfg config.S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Storage{
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Subir carga el contenido y devuelve la URL pública del objeto.
func (s *S3Storage) Subir(ctx context.Context, contenido []byte, nombre, proposito string) (string, error) {
	key := s.objectKey(nombre, proposito)
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contenido),
		ContentType: aws.String(contentType(nombre)),
	})
	if err != nil {
		return "", fmt.Errorf("subir a S3: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *S3Storage) objectKey(nombre, proposito string) string {
	now := time.Now()
	// el nombre original se conserva para trazabilidad; el uuid evita colisiones
	limpio := strings.ReplaceAll(path.Base(nombre), " ", "_")
	return fmt.Sprintf("documentos/%s/%d/%02d/%s-%s", proposito, now.Year(), now.Month(), uuid.New().String(), limpio)
}

func contentType(nombre string) string {
	switch strings.ToLower(path.Ext(nombre)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
