package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/controller"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/pkg/configwatcher"
	"skillbridge_backend/pkg/database"
	"skillbridge_backend/pkg/logger"
	"skillbridge_backend/pkg/monitoring"
	"skillbridge_backend/pkg/security"
	"skillbridge_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
	tracer   *sdktrace.TracerProvider
	stop     chan struct{}
}

type repositories struct {
	user        *repository.UserRepository
	skill       *repository.SkillRepository
	progress    *repository.ProgressRepository
	milestone   *repository.MilestoneRepository
	chat        *repository.ChatRepository
	assessment  *repository.AssessmentRepository
	achievement *repository.AchievementRepository
	checkin     *repository.CheckinRepository
	analytics   *repository.AnalyticsRepository
}

type services struct {
	auth           *service.AuthService
	storage        *service.StorageService
	ai             *service.AIService
	market         *service.MarketService
	recommendation *service.RecommendationService
	chat           *service.ChatService
	voice          *service.VoiceService
	assessment     *service.AssessmentService
	progress       *service.ProgressService
	achievement    *service.AchievementService
	analytics      *service.AnalyticsService
	dashboard      *service.DashboardService
}

type controllers struct {
	auth           *controller.AuthController
	chat           *controller.ChatController
	voice          *controller.VoiceController
	recommendation *controller.RecommendationController
	assessment     *controller.AssessmentController
	progress       *controller.ProgressController
	achievement    *controller.AchievementController
	skill          *controller.SkillController
	dashboard      *controller.DashboardController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		skill:       repository.NewSkillRepository(db),
		progress:    repository.NewProgressRepository(db),
		milestone:   repository.NewMilestoneRepository(db),
		chat:        repository.NewChatRepository(db),
		assessment:  repository.NewAssessmentRepository(db),
		achievement: repository.NewAchievementRepository(db),
		checkin:     repository.NewCheckinRepository(db),
		analytics:   repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.ai = service.NewAIService(cfg.AI)
	s.market = service.NewMarketService(cfg.Market)
	s.voice = service.NewVoiceService(cfg.Voice, s.storage)

	s.recommendation = service.NewRecommendationService(
		repos.user,
		repos.skill,
		repos.progress,
		repos.milestone,
		s.market,
		s.ai,
	)

	s.chat = service.NewChatService(repos.chat, repos.user, repos.skill, s.ai)
	s.assessment = service.NewAssessmentService(repos.assessment, repos.skill, repos.progress, repos.user)
	s.progress = service.NewProgressService(repos.progress, repos.milestone, repos.user)
	s.achievement = service.NewAchievementService(repos.achievement, repos.checkin, repos.user, rdb)
	s.analytics = service.NewAnalyticsService(repos.analytics, repos.user, repos.milestone, repos.chat, repos.progress)
	s.dashboard = service.NewDashboardService(repos.user, repos.progress, s.market, s.recommendation, s.achievement, s.analytics)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		chat:           controller.NewChatController(s.chat),
		voice:          controller.NewVoiceController(s.voice, s.chat),
		recommendation: controller.NewRecommendationController(s.recommendation, s.market),
		assessment:     controller.NewAssessmentController(s.assessment),
		progress:       controller.NewProgressController(s.progress),
		achievement:    controller.NewAchievementController(s.achievement),
		skill:          controller.NewSkillController(repos.skill),
		dashboard:      controller.NewDashboardController(s.dashboard, s.analytics),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	s.analytics.StartRollupLoop(a.stop)

	// 配置文件热更新（仅刷新可安全热替换的字段）
	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(cfg interface{}) {
		newCfg, ok := cfg.(*config.Config)
		if !ok {
			return
		}
		a.Config.AI = newCfg.AI
		a.Config.Voice = newCfg.Voice
		a.Config.Market.DefaultRole = newCfg.Market.DefaultRole
		logger.Log.Info("配置热更新完成")
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Redis 不可用时排行榜退回数据库排序，不阻止启动
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, leaderboard falls back to database", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		stop:   make(chan struct{}),
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("skillbridge-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
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

	close(a.stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
