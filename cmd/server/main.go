package main

import (
	"log"
	"os"
	"time"

	"tableside-service/internal/controllers/http"
	"tableside-service/internal/infra"
	mmysql "tableside-service/internal/infra/mysql"
	"tableside-service/internal/infra/rabbitmq"
	mysqlrepo "tableside-service/internal/repository/mysql"
	"tableside-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	menuRepo := mysqlrepo.NewMenuRepository(db)
	tableRepo := mysqlrepo.NewTableRepository(db)

	qrClient := infra.NewQRClient(os.Getenv("QR_SERVICE_URL"), os.Getenv("ORDERING_BASE_URL"), 2*time.Second)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "orders.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	orderService := services.NewOrderService(orderRepo, menuRepo, tableRepo, publisher)
	if os.Getenv("STRICT_TRANSITIONS") == "true" {
		orderService.EnableStrictTransitions()
	}

	menuService := services.NewMenuService(menuRepo)
	tableService := services.NewTableService(tableRepo, qrClient)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	menuService.SetRedisClient(redisClient)

	handler := http.NewHandler(orderService, menuService, tableService, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting tableside service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
