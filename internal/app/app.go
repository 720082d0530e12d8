package app

import (
	"career_match_backend/internal/config"
	"career_match_backend/internal/controller"
	"career_match_backend/internal/middleware"
	"career_match_backend/internal/repository"
	"career_match_backend/internal/service"
	"career_match_backend/internal/util"
	"career_match_backend/pkg/configwatcher"
	"career_match_backend/pkg/database"
	"career_match_backend/pkg/logger"
	"career_match_backend/pkg/monitoring"
	"career_match_backend/pkg/security"
	"career_match_backend/pkg/tracing"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services        *services
	tracer          *sdktrace.TracerProvider
	ctx             context.Context
	cancel          context.CancelFunc
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	careerRole   *repository.CareerRoleRepository
	careerPath   *repository.CareerPathRepository
	assessment   *repository.AssessmentRepository
	profileCache *repository.ProfileCache
}

type services struct {
	storage  *service.StorageService
	catalog  *service.CatalogService
	matching *service.MatchingService
}

type controllers struct {
	health     *controller.HealthController
	assessment *controller.AssessmentController
	matching   *controller.MatchingController
	skillGap   *controller.SkillGapController
	career     *controller.CareerController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// reloadConfig 配置文件变化后依次通知所有回调
func (a *App) reloadConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		careerRole:   repository.NewCareerRoleRepository(db),
		careerPath:   repository.NewCareerPathRepository(db),
		assessment:   repository.NewAssessmentRepository(db),
		profileCache: repository.NewProfileCache(rdb, cfg.Cache.ProfileTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) (*services, error) {
	matchingCfg, err := cfg.MatchingConfig()
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.storage = service.NewStorageService(cfg)
	s.catalog = service.NewCatalogService(db, repos.careerRole, repos.careerPath, s.storage, cfg.Catalog.ExportKey)
	s.matching = service.NewMatchingService(
		repos.careerRole,
		repos.careerPath,
		repos.assessment,
		repos.profileCache,
		matchingCfg,
	)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		health:     controller.NewHealthController(db, rdb),
		assessment: controller.NewAssessmentController(s.matching),
		matching:   controller.NewMatchingController(s.matching),
		skillGap:   controller.NewSkillGapController(s.matching),
		career:     controller.NewCareerController(s.catalog),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(middleware.RequestLogger())
	router.Use(monitoring.MetricsMiddleware())
}

// applyMatchingConfig 热更新时只替换匹配参数，其余配置需要重启
func (a *App) applyMatchingConfig(cfg *config.Config) {
	mc, err := cfg.MatchingConfig()
	if err != nil {
		monitoring.ConfigReloads.WithLabelValues("invalid").Inc()
		logger.Log.Error("新的匹配参数无效，保留原配置", zap.Error(err))
		return
	}
	if err := a.services.matching.UpdateConfig(a.ctx, mc); err != nil {
		logger.Log.Error("更新匹配参数失败", zap.Error(err))
	}
}

func (a *App) startBackgroundTasks() {
	if a.Config.ConfigDir == "" {
		return
	}
	go func() {
		if err := configwatcher.Watch(a.ctx, a.Config.ConfigDir, configwatcher.DefaultDebounce, a.reloadConfig); err != nil {
			logger.Log.Error("配置监听启动失败", zap.Error(err))
		}
	}()
}

// build 组装依赖，不初始化日志、追踪与后台任务，便于测试
func build(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		ctx:    ctx,
		cancel: cancel,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services, err := app.initServices(repos, cfg, db)
	if err != nil {
		cancel()
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(app.applyMatchingConfig)
	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")
	gin.SetMode(cfg.Server.Mode)

	migrate := cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// 缓存只是加速，连不上时降级运行
		logger.Log.Warn("Failed to initialize redis, profile cache disabled", zap.Error(err))
		rdb = nil
	}

	// 监控初始化
	monitoring.Init()

	app, err := build(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to build application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	if cfg.Catalog.ImportOnStart && cfg.Catalog.ObjectKey != "" {
		app.services.catalog.SeedFromStorage(cfg.Catalog.ObjectKey)
	}

	app.startBackgroundTasks()

	return app
}

// ImportCatalogFile 命令行导入本地目录文件
func (a *App) ImportCatalogFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := a.services.catalog.Import(a.ctx, f, "file")
	if err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	log.Printf("Imported %d roles and %d paths from %s", res.Roles, res.Paths, path)
	return nil
}

// ExportCatalog 命令行导出当前目录到存储
func (a *App) ExportCatalog(key string) error {
	url, err := a.services.catalog.Export(a.ctx, key)
	if err != nil {
		return err
	}
	log.Printf("Catalog exported to %s", url)
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
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
	a.shutdown(ctx)

	log.Println("Server exiting")
}
