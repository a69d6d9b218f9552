package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeline-frontend/config"
	"timeline-frontend/internal/api/profile"
	"timeline-frontend/internal/api/timeline"
	"timeline-frontend/internal/middleware"
	"timeline-frontend/internal/notify"
	"timeline-frontend/internal/remote"
	"timeline-frontend/internal/render"
	"timeline-frontend/internal/service"
	"timeline-frontend/internal/token"
	"timeline-frontend/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			util.Logger.Error("程序发生严重错误", zap.Any("error", r))
		}
	}()

	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 初始化令牌存储
	tokens, err := token.NewFileStore(config.AppConfig.TokenStorePath)
	if err != nil {
		util.Logger.Fatal("初始化令牌存储失败", zap.Error(err))
	}

	// 初始化远程 API 客户端
	apiClient := remote.NewClient(config.AppConfig.APIBaseURL, tokens)
	userClient := remote.NewUserClient(apiClient)
	streamClient := remote.NewStreamClient(apiClient)
	postClient := remote.NewPostClient(apiClient)
	authClient := remote.NewAuthClient(apiClient)

	// 初始化渲染器与通知队列
	renderer := render.New()
	notices := notify.NewQueue()

	// 初始化服务和处理器
	bootstrapService := service.NewBootstrapService(
		userClient,
		streamClient,
		authClient,
		tokens,
		service.AnonymousIdentity{
			Email:             config.AppConfig.DefaultUserEmail,
			Username:          config.AppConfig.DefaultUserName,
			DisplayName:       "Usuario de Prueba",
			Bio:               "Este es un usuario de prueba",
			StreamName:        config.AppConfig.DefaultStreamName,
			StreamDescription: "Stream principal del timeline",
		},
	)
	timelineService := service.NewTimelineService(postClient, renderer, notices)
	profileService := service.NewProfileService(userClient, postClient, tokens, renderer, notices)

	timelineHandler := timeline.NewTimelineHandler(timelineService, bootstrapService, notices)
	profileHandler := profile.NewProfileHandler(profileService, bootstrapService, notices)
	creatorHandler := profile.NewCreatorHandler(profileService, bootstrapService, notices)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// 时间线页面与操作
	r.GET("/", timelineHandler.ShowTimeline)
	r.POST("/posts", timelineHandler.CreatePost)
	r.POST("/posts/:id/delete", timelineHandler.DeletePost)
	r.POST("/posts/:id/like", timelineHandler.LikePost)
	r.POST("/posts/:id/retweet", timelineHandler.RetweetPost)

	// 资料创建页（OAuth 回调落点，不受认证保护）
	r.GET("/profile/new", creatorHandler.ShowCreator)
	r.POST("/profile/new", creatorHandler.CreateProfile)

	// 需要认证的个人资料页
	authorized := r.Group("/profile")
	authorized.Use(middleware.AuthGuard(tokens))
	{
		authorized.GET("", profileHandler.ShowProfile)
		authorized.POST("/posts", profileHandler.CreatePost)
		authorized.POST("/posts/:id/delete", profileHandler.DeletePost)
	}

	// 创建 http.Server 以支持优雅关闭
	srv := &http.Server{
		Addr:    config.AppConfig.ListenAddr,
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("前端壳正在启动", zap.String("addr", config.AppConfig.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
