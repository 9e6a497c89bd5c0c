package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	middlewareLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/yockii/markslide/internal/api"
	"github.com/yockii/markslide/internal/llm"
	"github.com/yockii/markslide/internal/middleware"
	"github.com/yockii/markslide/internal/service"
	"github.com/yockii/markslide/internal/storage"
	"github.com/yockii/markslide/pkg/config"
	"github.com/yockii/markslide/pkg/logger"
)

type Server struct {
	app *fiber.App
	rdb *redis.Client

	// 各个service
	deckSrv    service.DeckService
	convertSrv service.ConvertService
	publishSrv service.PublishService
	historySrv service.HistoryService
}

func New() *Server {
	return &Server{}
}

func (s *Server) Start() error {
	// 创建Fiber实例
	s.app = fiber.New(fiber.Config{
		AppName:               config.GetString("server.app_name"),
		EnablePrintRoutes:     config.GetBool("server.print_routes"),
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
	})

	s.setupRedis()
	s.setupServices()

	// 配置中间件
	s.setupMiddleware()

	// 注册路由
	s.registerHandlers()
	s.setupRoutes()

	// 启动服务器
	addr := config.GetServerAddress()
	logger.Info("服务监听地址", logger.F("address", addr))

	// 优雅关闭
	go s.gracefulShutdown()

	if err := s.app.Listen(addr); err != nil {
		logger.Error("服务停止", logger.F("error", err))
		return err
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务关闭中...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		logger.Error("服务关闭失败", logger.F("error", err))
	}

	if s.rdb != nil {
		_ = s.rdb.Close()
	}

	logger.Info("服务已关闭")
}

// setupRedis 按配置连接redis，未启用时HTML缓存自动关闭
func (s *Server) setupRedis() {
	if !config.GetBool("redis.enabled") {
		return
	}
	s.rdb = redis.NewClient(&redis.Options{
		Addr:     config.GetString("redis.addr"),
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.db"),
	})
	if err := s.rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis连接失败，禁用HTML缓存", logger.F("err", err))
		s.rdb = nil
	}
}

// setupServices 配置服务层
func (s *Server) setupServices() {
	s.deckSrv = service.NewDeckService()
	s.convertSrv = service.NewConvertService(llm.GetDefaultClient())
	s.historySrv = service.NewHistoryService()
	s.publishSrv = service.NewPublishService(storage.GetDefaultStore(), s.rdb, s.historySrv)
}

// setupMiddleware 配置中间件
func (s *Server) setupMiddleware() {
	// 异常恢复
	s.app.Use(recover.New())

	// 请求ID
	s.app.Use(middleware.RequestID())

	// CORS
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetString("security.allowed_origins"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// 访问日志
	s.app.Use(middlewareLogger.New(middlewareLogger.Config{
		Format:     "[${ip}]-${time} ${status} ${latency} ${method} ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
}

func (s *Server) registerHandlers() {
	// LLM接口限流
	var llmLimiters []fiber.Handler
	if config.GetBool("rate_limit.enabled") {
		llmLimiters = append(llmLimiters, middleware.RateLimit(
			config.GetInt("rate_limit.max_requests"),
			time.Duration(config.GetInt("rate_limit.duration"))*time.Second,
		))
	}

	api.RegisterSlideHandler(s.deckSrv, s.publishSrv)
	api.RegisterConvertHandler(s.convertSrv, llmLimiters...)
	api.RegisterThemeHandler(s.deckSrv, s.historySrv)
}

func (s *Server) setupRoutes() {
	apiGroup := s.app.Group("/api/v1")

	for _, handler := range api.Handlers {
		handler.RegisterRoutes(apiGroup)
		if public, ok := handler.(api.PublicHandler); ok {
			public.RegisterPublicRoutes(s.app)
		}
	}

	// 健康检查
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
}
