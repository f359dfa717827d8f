package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"internship-web/backend/config"
	"internship-web/backend/internal/api/handler"
	"internship-web/backend/internal/api/router"
	"internship-web/backend/internal/repository"
	"internship-web/backend/internal/service"
	"internship-web/backend/pkg/database"
	"internship-web/backend/pkg/jwt"
	applogger "internship-web/backend/pkg/logger"
	"internship-web/backend/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load(os.Getenv("INTERN_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开存储
	repo, closeStore := openStore(cfg, logger)
	defer closeStore()

	// 4. 连接 Redis（可选：连接失败时降级为直接查库）
	var cache service.NameCache
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，显示名缓存不可用", zap.Error(err))
		} else {
			cache = rdb
		}
	}

	// 5. 依赖注入: Repository → Service → Handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(repo, jwtMgr, cache, logger)
	h := handler.NewHandler(svc)

	// 6. 初始化演示数据（仅在用户表为空时）
	if cfg.Bootstrap.SeedDemo {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := service.SeedDemoData(seedCtx, repo, logger); err != nil {
			logger.Error("初始化演示数据失败", zap.Error(err))
		}
		cancel()
	}

	// 7. 初始化路由
	engine := router.Setup(cfg, h, svc.Auth, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// openStore 按 db.driver 选择存储后端，返回仓储聚合与关闭函数
func openStore(cfg *config.Config, logger *zap.Logger) (*repository.Repository, func()) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(&cfg.Database.Postgres, cfg.Log.Level, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
		logger.Info("PostgreSQL 连接成功")
		return repository.NewRepository(db), func() { sqlDB.Close() }

	case config.DriverMemory:
		logger.Warn("使用内存存储，进程退出后数据丢失")
		return repository.NewMemoryRepository(), func() {}

	default:
		client, db, err := database.NewMongo(context.Background(), &cfg.Database.Mongo, logger)
		if err != nil {
			logger.Fatal("MongoDB 连接失败", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		// 索引创建失败不阻止启动，唯一性仍由服务层先查后写保证
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			logger.Warn("创建 MongoDB 索引失败", zap.Error(err))
		}
		return repository.NewMongoRepository(db), func() {
			closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer closeCancel()
			client.Disconnect(closeCtx)
		}
	}
}
