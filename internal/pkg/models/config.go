package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	RateLimit  RateLimitConfig
	Pagination PaginationConfig
	Query      QueryConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
	APIPrefix       string
	CORSOrigins     []string
}

// MongoConfig contains document store connection configuration
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout int // in seconds
	QueryTimeout   int // in seconds
	ConnectRetries int
	MaxPoolSize    uint64
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// RateLimitConfig controls the Redis backed request limiter
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  int // in seconds
}

// PaginationConfig bounds listing page sizes
type PaginationConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

// QueryConfig tunes fan-out queries against the store
type QueryConfig struct {
	Concurrency int
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}
