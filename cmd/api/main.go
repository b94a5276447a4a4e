package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/ai"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/payments"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	// serviços opcionais: sem credenciais, a rota correspondente
	// responde 503 em vez de derrubar o boot
	var aiService *ai.Service
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("failed to init ai client: %v", err)
		}
		aiService = ai.NewService(client, rdb, time.Duration(cfg.AICacheTTLHours)*time.Hour)
	}

	var paymentsClient *payments.Client
	if cfg.MercadoPagoAccessToken != "" {
		client, err := payments.New(cfg.MercadoPagoAccessToken, cfg.Currency)
		if err != nil {
			log.Fatalf("failed to init payments client: %v", err)
		}
		paymentsClient = client
	}

	images := storage.NewImageStore(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Images:   images,
		AI:       aiService,
		Payments: paymentsClient,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
