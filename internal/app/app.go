package app

import (
	"ai_eng_tam_backend/internal/config"
	"ai_eng_tam_backend/internal/controller"
	"ai_eng_tam_backend/internal/repository"
	"ai_eng_tam_backend/internal/service"
	"ai_eng_tam_backend/pkg/configwatcher"
	"ai_eng_tam_backend/pkg/database"
	"ai_eng_tam_backend/pkg/logger"
	"ai_eng_tam_backend/pkg/monitoring"
	"ai_eng_tam_backend/pkg/security"
	"ai_eng_tam_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	survey     *repository.SurveyRepository
	deviceFlag *repository.DeviceFlagRepository
}

type services struct {
	survey    *service.SurveyService
	analytics *service.AnalyticsService
	export    *service.ExportService
	admin     *service.AdminService
}

type controllers struct {
	survey *controller.SurveyController
	admin  *controller.AdminController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{survey: repository.NewSurveyRepository(db)}
	if rdb != nil {
		flagTTL := time.Duration(cfg.Survey.DeviceFlagTTLHours) * time.Hour
		repos.deviceFlag = repository.NewDeviceFlagRepository(rdb, flagTTL)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	var flags service.DeviceFlagStore
	if repos.deviceFlag != nil {
		flags = repos.deviceFlag
	}
	s.survey = service.NewSurveyService(repos.survey, flags, cfg)
	s.analytics = service.NewAnalyticsService(repos.survey)
	s.export = service.NewExportService(repos.survey)
	s.admin = service.NewAdminService(cfg)
	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		survey: controller.NewSurveyController(s.survey),
		admin:  controller.NewAdminController(s.admin, s.analytics, s.export),
		health: controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services, cfg *config.Config) {
	// 闲置会话清理
	sessionTTL := time.Duration(cfg.Survey.SessionTTLMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if reaped := s.survey.ReapIdleSessions(sessionTTL); reaped > 0 {
				logger.Log.Info("reaped idle survey sessions", zap.Int("count", reaped))
			}
		}
	}()

	// 配置热更新：访问码、管理口令变更即时生效
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("config reloaded")
		a.Config = newCfg
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	// redis 不可用时降级运行：设备提交标记仅为提示性功能
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, device submission flags disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	app.RegisterConfigCallback(services.survey.UpdateConfig)
	app.RegisterConfigCallback(services.admin.UpdateConfig)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ai-eng-tam-survey", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	app.startBackgroundTasks(services, cfg)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
