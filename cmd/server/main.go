package main // Entry point package

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/gmfarias/arquivo-pastas/internal/config"
	"github.com/gmfarias/arquivo-pastas/internal/database"
	"github.com/gmfarias/arquivo-pastas/internal/detector"
	"github.com/gmfarias/arquivo-pastas/internal/handler"
	"github.com/gmfarias/arquivo-pastas/internal/queue"
	"github.com/gmfarias/arquivo-pastas/internal/repository"
	"github.com/gmfarias/arquivo-pastas/internal/router"
	"github.com/gmfarias/arquivo-pastas/internal/state"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	var (
		db      *sql.DB
		dialect database.Dialect
		err     error
	)
	switch cfg.DBDriver {
	case "mysql":
		db, err = database.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialect = database.MySQL
	default:
		db, err = database.OpenSQLite(cfg.DBPath)
		dialect = database.SQLite
	}
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx, db, dialect); err != nil {
		log.Fatalf("schema: %v", err) // no schema, no service
	}
	if err := database.Seed(ctx, db, dialect); err != nil {
		log.Printf("seed: %v (continuing with whatever applied)", err)
	}

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	if rdb == nil {
		log.Printf("redis unavailable: cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	var det detector.Detector
	switch cfg.Detector {
	case config.DetectorOCR:
		det = detector.NewOCR(detector.NewTesseract(cfg.OCRLang))
	default:
		det = detector.NewRandom()
	}

	loc := state.NewActiveLocation(state.DefaultRoom, state.DefaultDrawer)

	brokerConfigured := os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""
	if brokerConfigured {
		go func() {
			if err := queue.StartRegistryConsumer(); err != nil {
				log.Printf("registry-consumer stopped: %v", err)
			}
		}()
	}

	reg := handler.NewRegistryHandler(repository.NewHierarchyRepo(db), loc, cacheCfg, rdb)
	capture := handler.NewCaptureHandler(
		repository.NewDrawerRepo(db),
		repository.NewFolderRepo(db),
		det, loc, cacheCfg, rdb, brokerConfigured,
	)

	e := echo.New()
	router.RegisterRoutes(e, reg, capture, cacheCfg, rlCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s db=%s detector=%s)", addr, cfg.Env, cfg.DBDriver, cfg.Detector)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
