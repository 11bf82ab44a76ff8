// @title        Performance Analytics API
// @version      1.0
// @description  員工績效紀錄與分析後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"perf-analytics/internal/database"
	"perf-analytics/internal/kv"
	"perf-analytics/internal/router"
	"perf-analytics/internal/store"
	"perf-analytics/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newFileKV       = func(dir string) (kv.KV, error) { return kv.NewFileKV(dir) }
	newRedisKV      = func(addr, password string, db int) (kv.KV, error) { return kv.NewRedisKV(addr, password, db) }
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	openStore       = store.Open
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

// openKV 依 KV_BACKEND 建立鍵值儲存：file（預設）、redis 或 postgres
func openKV(ctx context.Context) (kv.KV, error) {
	backend := os.Getenv("KV_BACKEND")
	if backend == "" {
		backend = "file"
	}

	switch backend {
	case "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		return newFileKV(dir)

	case "redis":
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			return nil, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
		}
		index := 0
		if v := os.Getenv("REDIS_DB"); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("無效的 REDIS_DB: %v", err)
			}
			index = i
		}
		return newRedisKV(addr, os.Getenv("REDIS_PASSWORD"), index)

	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
		}
		if err := runMigrationsFn(dbURL); err != nil {
			return nil, fmt.Errorf("Migration 執行失敗: %v", err)
		}
		db, err := newPgxPool(ctx, dbURL)
		if err != nil {
			return nil, fmt.Errorf("DB 連線失敗: %v", err)
		}
		return kv.NewPostgresKV(db), nil

	default:
		return nil, fmt.Errorf("無效的 KV_BACKEND: %s", backend)
	}
}

func run() error {
	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	kvs, err := openKV(context.Background())
	if err != nil {
		return err
	}
	defer func() {
		if err := kvs.Close(); err != nil {
			log.Printf("關閉儲存失敗: %v", err)
		}
	}()

	// 單一 worker 序列化所有寫回，Stop 會等排隊中的寫入完成
	wp := newWorkerPool(1)
	defer wp.Stop()

	st, err := openStore(context.Background(), kvs, wp)
	if err != nil {
		return fmt.Errorf("載入資料失敗: %v", err)
	}

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, st, kvs)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
