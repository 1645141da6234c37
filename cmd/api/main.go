package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/abonos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/auth"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/clientes"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/documentos"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/negociacion"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/proyectos"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/audit"
	infrapdf "github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/Inmobiliaria-api/internal/interfaces/http"
	"github.com/jhoicas/Inmobiliaria-api/pkg/config"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	proyectoRepo := postgres.NewProyectoRepository(pool)
	viviendaRepo := postgres.NewViviendaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	negRepo := postgres.NewNegociacionRepository(pool)
	fuenteRepo := postgres.NewFuentePagoRepository(pool)
	abonoRepo := postgres.NewAbonoRepository(pool)
	docRepo := postgres.NewDocumentoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Auditoría por Redis Streams. Sin REDIS_ADDR la publicación queda
	// desactivada (no-op) y la API opera igual.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, auditoría desactivada")
			redisClient = nil
		}
	}
	auditPublisher := audit.NewRedisPublisher(redisClient)

	docStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente S3 para documentos")
	}

	authUC := auth.NewAuthUseCase(userRepo, proyectoRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	proyectoUC := proyectos.NewUseCase(proyectoRepo, viviendaRepo)
	clienteUC := clientes.NewUseCase(clienteRepo)
	negociacionUC := negociacion.NewUseCase(txRunner, negRepo, fuenteRepo, clienteRepo, auditPublisher)
	abonoUC := abonos.NewUseCase(txRunner, fuenteRepo, abonoRepo, negRepo, auditPublisher)
	documentoUC := documentos.NewUseCase(docRepo, negRepo, docStorage, auditPublisher)

	// PDF: estado de cuenta de la negociación (fuentes y abonos)
	pdfGenerator := infrapdf.NewEstadoCuentaGenerator()
	estadoCuentaUC := negociacion.NewPDFUseCase(
		negRepo, fuenteRepo, abonoRepo, clienteRepo, viviendaRepo, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inmobiliaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProyectoUC:    proyectoUC,
		ClienteUC:     clienteUC,
		NegociacionUC: negociacionUC,
		PDFUC:         estadoCuentaUC,
		AbonoUC:       abonoUC,
		DocumentoUC:   documentoUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info().Msg("aplicación detenida")
}
