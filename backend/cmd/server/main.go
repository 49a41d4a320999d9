package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/config"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/api/handler"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/api/router"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/realtime"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/repository"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/internal/service"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/database"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/jwt"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/logger"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/redis"
	"github.com/vannoorsab/Skill-Swap-Odoo-Hackthon/backend/pkg/upload"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("服务启动失败", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	// ── 数据库 ──
	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, log); err != nil {
		return err
	}

	// ── Redis（可降级：黑名单、限流、排行榜快照不可用）──
	deps := &service.Deps{}
	routerDeps := &router.Deps{}
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis 不可用，降级运行", zap.Error(err))
	} else {
		defer rdb.Close()
		deps.Tokens = rdb
		deps.Cache = rdb
		routerDeps.Tokens = rdb
		routerDeps.Limiter = rdb
	}

	// ── JWT ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	deps.JWT = jwtMgr
	routerDeps.JWT = jwtMgr

	// ── 头像存储（可选）──
	if cfg.Cloudinary.URL != "" {
		uploader, err := upload.NewCloudinaryUploader(&cfg.Cloudinary, log)
		if err != nil {
			return err
		}
		deps.Uploader = uploader
	} else {
		log.Warn("未配置 Cloudinary，头像上传功能不可用")
	}

	// ── 实时推送中心 ──
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub(log)
	go hub.Run(ctx)
	deps.Publisher = hub

	// ── 依赖装配 ──
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, deps, cfg, log)
	h := handler.NewHandler(svc, hub, log)
	engine := router.New(cfg, h, routerDeps, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ── 启动与优雅退出 ──
	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("收到退出信号", zap.String("signal", sig.String()))
	}

	// 先停 WebSocket 推送，再关 HTTP
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务关闭失败: %w", err)
	}

	log.Info("服务已退出")
	return nil
}
