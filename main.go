package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"tiechef/configs"
	"tiechef/controllers"
	"tiechef/middlewares"
	"tiechef/pkg/cache"
	"tiechef/pkg/logger"
	"tiechef/repository"
	"tiechef/routes"
	"tiechef/services"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()
	sugar := zlog.Sugar()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// Cache: redis when configured, process-local otherwise. Either way the
	// dish listing degrades to plain DB reads when the backend misbehaves.
	var cacheStore cache.Store
	if cfg.RedisAddr != "" {
		cacheStore = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		sugar.Infow("using redis cache", "addr", cfg.RedisAddr)
	} else {
		cacheStore = cache.NewMemory()
		sugar.Infow("using in-memory cache")
	}

	// Repositories
	staffRepo := repository.NewStaffRepository(db)
	dishRepo := repository.NewDishRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	tableRepo := repository.NewDiningTableRepository(db)

	// Services
	staffSvc := services.NewStaffService(staffRepo)
	dishSvc := services.NewDishService(dishRepo, cacheStore, cfg.CacheTTL, sugar)
	receiptSvc := services.NewReceiptService(receiptRepo)
	tableSvc := services.NewDiningTableService(tableRepo)
	viewSvc := services.NewTableViewService()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, routes.Controllers{
		Staff:       controllers.NewStaffController(staffSvc),
		Dish:        controllers.NewDishController(dishSvc),
		Receipt:     controllers.NewReceiptController(receiptSvc),
		DiningTable: controllers.NewDiningTableController(tableSvc),
		TableView:   controllers.NewTableViewController(viewSvc),
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	sugar.Infow("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
