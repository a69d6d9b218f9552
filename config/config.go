package config

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config 结构体用于存储应用程序的配置信息
type Config struct {
	APIBaseURL        string // 远程社交 API 的基础地址
	ListenAddr        string // 前端壳监听地址
	FrontendURL       string // 前端对外地址（OAuth 回调、CORS）
	TokenStorePath    string // 令牌存储文件路径
	DefaultUserEmail  string // 匿名演示流程使用的测试用户邮箱
	DefaultUserName   string // 匿名演示流程使用的测试用户名
	DefaultStreamName string // 匿名演示流程使用的默认 Stream 名称
	LogLevel          string
	Debug             bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8080/api"),
		ListenAddr:        getEnv("LISTEN_ADDR", ":3000"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
		TokenStorePath:    getEnv("TOKEN_STORE_PATH", "./data/tokens.json"),
		DefaultUserEmail:  getEnv("DEFAULT_USER_EMAIL", "test@example.com"),
		DefaultUserName:   getEnv("DEFAULT_USER_NAME", "testuser"),
		DefaultStreamName: getEnv("DEFAULT_STREAM_NAME", "Timeline Principal"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Debug:             getEnvAsBool("DEBUG", true),
	}

	validateConfig()

	if AppConfig.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("应用程序运行在调试模式")
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Println("应用程序运行在生产模式")
	}

	log.Printf("配置加载完成。远程 API：%s", AppConfig.APIBaseURL)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func validateConfig() {
	if AppConfig.APIBaseURL == "" {
		log.Fatal("错误：远程 API 地址未设置")
	}
	if AppConfig.TokenStorePath == "" {
		log.Fatal("错误：令牌存储路径未设置")
	}
	if AppConfig.DefaultUserEmail == "" || AppConfig.DefaultStreamName == "" {
		log.Fatal("错误：匿名演示配置不完整")
	}
}
