package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AI       AIConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port           string
	AppName        string   `mapstructure:"app_name"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	TimeZone    string
	TablePrefix string `mapstructure:"table_prefix"`
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AIConfig 描述外部 chat-completion 服务
type AIConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	APIKey       string `mapstructure:"api_key"`
	Model        string
	Temperature  float32
	MaxTokens    int           `mapstructure:"max_tokens"`
	Timeout      time.Duration // 0 表示不设置超时
	SystemPrompt string        `mapstructure:"system_prompt"`
}

type JWTConfig struct {
	Secret      string
	Issuer      string
	ExpireHours int `mapstructure:"expire_hours"`
}

// AdminConfig 启动时确保存在的管理员账号
type AdminConfig struct {
	Name     string
	Email    string
	Password string
	Bio      string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

// DefaultSystemPrompt is the fixed instruction sent ahead of every prompt.
const DefaultSystemPrompt = "You are an AI mentor helping students who failed in traditional education. " +
	"If asked for careers, return JSON array of objects with title, description, steps, pitfalls, and resources. " +
	"If asked for quotes or guidance, return plain text without quotes or markdown. " +
	"If asked for study goals, ONLY return a raw JSON array of strings like: " +
	`["Goal 1", "Goal 2", "Goal 3", "Goal 4", "Goal 5"]`

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.app_name", "failcourse")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "failcourse")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.table_prefix", "")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ai.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "mistralai/mistral-7b-instruct")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 2000)
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.system_prompt", DefaultSystemPrompt)

	v.SetDefault("jwt.secret", "failcourse-dev-secret")
	v.SetDefault("jwt.issuer", "failcourse")
	v.SetDefault("jwt.expire_hours", 72)

	v.SetDefault("admin.name", "Admin")
	v.SetDefault("admin.email", "admin@failed.com")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.bio", "Platform administrator")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// LoadConfig 从 config.yaml 与环境变量加载配置
func LoadConfig() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")        // 在当前目录中查找配置
	v.AddConfigPath("./config") // 在 config 目录中查找配置

	cfg, err := load(v)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to decode config")
	}
	return cfg
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 兼容旧部署使用的环境变量名
	_ = v.BindEnv("ai.api_key", "AI_API_KEY", "OPENROUTER_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("error reading config file, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
