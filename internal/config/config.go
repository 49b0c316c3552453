// Package config 提供配置管理
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	App     AppConfig     `yaml:"app"`
	Engine  EngineConfig  `yaml:"engine"`
	History HistoryConfig `yaml:"history"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name     string `yaml:"name"`
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

// EngineConfig 分班引擎配置
//
// 这里的值是引擎调用方在未显式传入 assign.Config 时使用的默认值，与
// pkg/assign/params 的 OptimizationParams 预设是两层不同的配置：前者是
// 进程级部署参数，后者是单次调用的优化参数。
type EngineConfig struct {
	DefaultTimeout       time.Duration `yaml:"default_timeout"`
	MaxIterations        int           `yaml:"max_iterations"`
	NumParallelInstances int           `yaml:"num_parallel_instances"` // 0 表示自动检测
}

// HistoryConfig 运行历史持久化配置
type HistoryConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	// MaxRecords 是历史表中保留的最大运行记录数，超出部分在写入时被裁剪
	MaxRecords int `yaml:"max_records"`
}

// DSN 返回数据库连接字符串
func (c *HistoryConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "classdivider"),
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("APP_LOG_LEVEL", "info"),
		},
		Engine: EngineConfig{
			DefaultTimeout:       getEnvDuration("ENGINE_TIMEOUT", 60*time.Second),
			MaxIterations:        getEnvInt("ENGINE_MAX_ITERATIONS", 300_000),
			NumParallelInstances: getEnvInt("ENGINE_NUM_PARALLEL_INSTANCES", 0),
		},
		History: HistoryConfig{
			Host:            getEnv("HISTORY_DB_HOST", "localhost"),
			Port:            getEnvInt("HISTORY_DB_PORT", 5432),
			Name:            getEnv("HISTORY_DB_NAME", "classdivider"),
			User:            getEnv("HISTORY_DB_USER", "classdivider"),
			Password:        getEnv("HISTORY_DB_PASSWORD", "classdivider"),
			SSLMode:         getEnv("HISTORY_DB_SSL_MODE", "disable"),
			MaxOpenConns:    getEnvInt("HISTORY_DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("HISTORY_DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvDuration("HISTORY_DB_CONN_MAX_LIFETIME", 5*time.Minute),
			MaxRecords:      getEnvInt("HISTORY_MAX_RECORDS", 50),
		},
	}

	return cfg, nil
}

// IsDevelopment 检查是否为开发环境
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction 检查是否为生产环境
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// 辅助函数
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
