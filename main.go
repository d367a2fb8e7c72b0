package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"progresstrack_backend/internals/configs"
	database "progresstrack_backend/internals/databases"
	assessmentModel "progresstrack_backend/internals/features/assessment/model"
	attendanceModel "progresstrack_backend/internals/features/attendance/model"
	monthlyModel "progresstrack_backend/internals/features/monthlyreport/model"
	quarterlyModel "progresstrack_backend/internals/features/quarterly/model"
	studentModel "progresstrack_backend/internals/features/students/model"
	middlewares "progresstrack_backend/internals/middlewares"
	routes "progresstrack_backend/internals/route"
	seeds "progresstrack_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	app.Use(middlewares.RequestContext(10 * time.Second))
	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	if err := database.DB.AutoMigrate(
		&studentModel.StudentModel{},
		&studentModel.EducatorModel{},
		&attendanceModel.AttendanceLedgerModel{},
		&monthlyModel.MonthlyReportModel{},
		&assessmentModel.AssessmentGradeModel{},
		&quarterlyModel.QuarterlyReportModel{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}

	if os.Getenv("RUN_SEEDS") == "true" {
		seeds.RunAllSeeds(database.DB)
	}

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
