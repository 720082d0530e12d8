package config

import (
	"career_match_backend/internal/matching"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Matching  MatchingConfig  `mapstructure:"matching"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool   `mapstructure:"-"`
	MigrateOnly  bool   `mapstructure:"-"`
	ConfigDir    string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Type       string `mapstructure:"type"` // mysql | sqlite
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	Charset    string
	ParseTime  bool
	SQLitePath string `mapstructure:"sqlite_path"`
	LogSQL     bool   `mapstructure:"log_sql"`
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

// CatalogConfig 职业目录的来源：ObjectKey 指向存储中的 YAML 文件
type CatalogConfig struct {
	ObjectKey     string `mapstructure:"object_key"`
	ImportOnStart bool   `mapstructure:"import_on_start"`
	ExportKey     string `mapstructure:"export_key"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	ServiceName       string `mapstructure:"service_name"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type CacheConfig struct {
	ProfileTTLMinutes int `mapstructure:"profile_ttl_minutes"`
}

func (c CacheConfig) ProfileTTL() time.Duration {
	return time.Duration(c.ProfileTTLMinutes) * time.Minute
}

type MatchingConfig struct {
	Weights struct {
		Skills        float64 `mapstructure:"skills"`
		Personality   float64 `mapstructure:"personality"`
		LearningStyle float64 `mapstructure:"learning_style"`
	} `mapstructure:"weights"`
	PersonalityWeights struct {
		RIASEC     float64 `mapstructure:"riasec"`
		BigFive    float64 `mapstructure:"big_five"`
		WorkValues float64 `mapstructure:"work_values"`
	} `mapstructure:"personality_weights"`
	Thresholds struct {
		Entry    float64 `mapstructure:"entry"`
		Mid      float64 `mapstructure:"mid"`
		Advanced float64 `mapstructure:"advanced"`
	} `mapstructure:"thresholds"`
	GapDelta            float64 `mapstructure:"gap_delta"`
	MissingAnswerPolicy string  `mapstructure:"missing_answer_policy"`
}

// MatchingConfig 转换为匹配引擎使用的不可变配置
func (c *Config) MatchingConfig() (matching.Config, error) {
	m := c.Matching
	cfg := matching.Config{
		Weights: matching.Weights{
			Skills:        m.Weights.Skills,
			Personality:   m.Weights.Personality,
			LearningStyle: m.Weights.LearningStyle,
		},
		PersonalityWeights: matching.PersonalityWeights{
			RIASEC:     m.PersonalityWeights.RIASEC,
			BigFive:    m.PersonalityWeights.BigFive,
			WorkValues: m.PersonalityWeights.WorkValues,
		},
		Thresholds: matching.Thresholds{
			Entry:    m.Thresholds.Entry,
			Mid:      m.Thresholds.Mid,
			Advanced: m.Thresholds.Advanced,
		},
		GapDelta:       m.GapDelta,
		MissingAnswers: matching.MissingAnswerPolicy(m.MissingAnswerPolicy),
	}
	if err := cfg.Validate(); err != nil {
		return matching.Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := matching.DefaultConfig()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.type", "mysql")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)
	v.SetDefault("database.sqlite_path", "./data/career_match.db")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./uploads")

	v.SetDefault("catalog.object_key", "catalog/careers.yaml")
	v.SetDefault("catalog.export_key", "catalog/export.yaml")

	v.SetDefault("tracing.service_name", "career-match")
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
	v.SetDefault("cache.profile_ttl_minutes", 60)

	v.SetDefault("matching.weights.skills", def.Weights.Skills)
	v.SetDefault("matching.weights.personality", def.Weights.Personality)
	v.SetDefault("matching.weights.learning_style", def.Weights.LearningStyle)
	v.SetDefault("matching.personality_weights.riasec", def.PersonalityWeights.RIASEC)
	v.SetDefault("matching.personality_weights.big_five", def.PersonalityWeights.BigFive)
	v.SetDefault("matching.personality_weights.work_values", def.PersonalityWeights.WorkValues)
	v.SetDefault("matching.thresholds.entry", def.Thresholds.Entry)
	v.SetDefault("matching.thresholds.mid", def.Thresholds.Mid)
	v.SetDefault("matching.thresholds.advanced", def.Thresholds.Advanced)
	v.SetDefault("matching.gap_delta", def.GapDelta)
	v.SetDefault("matching.missing_answer_policy", string(def.MissingAnswers))
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CAREER_MATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Database
	v.BindEnv("database.type", "DATABASE_TYPE")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.port", "SERVER_PORT")

	// Storage / OSS
	v.BindEnv("storage.type", "STORAGE_TYPE")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Matching
	v.BindEnv("matching.missing_answer_policy", "CAREER_MATCH_MISSING_ANSWER_POLICY")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigDir = path

	if _, err := cfg.MatchingConfig(); err != nil {
		return nil, fmt.Errorf("invalid matching section: %w", err)
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
