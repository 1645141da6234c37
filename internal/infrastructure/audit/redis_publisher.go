// Package audit publica los eventos de auditoría en un stream de Redis para
// que la capa de presentación aguas abajo los consuma y humanice.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/ports"
)

// StreamEventos nombre del stream de auditoría.
const StreamEventos = "auditoria:eventos"

var _ ports.Auditoria = (*RedisPublisher)(nil)

// RedisPublisher publica eventos con XADD. Los casos de uso lo invocan en
// best-effort: un fallo aquí no revierte la operación de negocio.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher construye el publicador. Con client nil opera como no-op,
// útil en desarrollo sin Redis.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Publicar agrega el evento al stream.
func (p *RedisPublisher) Publicar(ctx context.Context, e ports.Evento) error {
	if p.client == nil {
		return nil
	}
	detalle, err := json.Marshal(e.Detalle)
	if err != nil {
		return fmt.Errorf("serializar detalle: %w", err)
	}
	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamEventos,
		Values: map[string]any{
			"tipo":           e.Tipo,
			"negociacion_id": e.NegociacionID,
			"actor":          e.Actor,
			"detalle":        string(detalle),
			"fecha":          e.Fecha.Format("2006-01-02T15:04:05Z07:00"),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("publicar evento: %w", err)
	}
	return nil
}
