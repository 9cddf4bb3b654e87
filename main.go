package main

import (
	"log"
	"time"

	"dinehall/config"
	httpapi "dinehall/internal/api/http"
	"dinehall/internal/service"
	"dinehall/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("dinehall-events")
	defer kafkaWriter.Close()

	menuRepo := storage.NewMenuPostgres(db)
	orderRepo := storage.NewOrderPostgres(db)
	paymentRepo := storage.NewPaymentPostgres(db)
	userRepo := storage.NewUserPostgres(db)
	menuCache := storage.NewRedisMenuCache(rdb, 10*time.Minute)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	qrEncoder := service.ReceiptQRGenerator{
		BaseURL: config.Getenv("QR_BASE_URL", "http://localhost"),
	}

	menuSvc := service.NewMenuService(menuRepo, menuCache)
	orderSvc := service.NewOrderService(orderRepo, menuSvc, userRepo, publisher, qrEncoder, service.DefaultGuestPolicy())
	paymentSvc := service.NewPaymentService(paymentRepo, orderRepo, publisher)

	handler := httpapi.NewHandler(menuSvc, orderSvc, paymentSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("HTTP_PORT", "8080"), router)
}
