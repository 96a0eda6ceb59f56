package config

// Config 配置主体
type Config struct {
	Server              ServerConfig        `mapstructure:"server"`
	DB                  DBConfig            `mapstructure:"database"`
	Mongo               MongoConfig         `mapstructure:"mongo"`
	Redis               RedisConfig         `mapstructure:"redis"`
	JWT                 JWTConfig           `mapstructure:"jwt"`
	MinIO               MinIOConfig         `mapstructure:"minio"`
	Elastic             ElasticConfig       `mapstructure:"elastic"`
	Kafka               KafkaConfig         `mapstructure:"kafka"`
	KafkaReviewConsumer KafkaReviewConsumer `mapstructure:"kafka_review_consumer"`
	Trending            TrendingConfig      `mapstructure:"trending"`
	Thread              ThreadConfig        `mapstructure:"thread"`
	Logstash            LogstashConfig      `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
	Issuer      string `mapstructure:"issuer"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Enable           bool   `mapstructure:"enable"`
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	UsePublicLink    bool   `mapstructure:"use_public_link"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	MovieIndex string `mapstructure:"movie_index"`
}

type KafkaConfig struct {
	Enable   bool           `mapstructure:"enable"`
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaReviewConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// TrendingConfig 热门榜单配置
type TrendingConfig struct {
	WindowDays      int    `mapstructure:"window_days"`
	Limit           int    `mapstructure:"limit"`
	Strategy        string `mapstructure:"strategy"` // inprocess | pipeline
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
	RefreshCron     string `mapstructure:"refresh_cron"`
}

// ThreadConfig 评论/评价文档写入配置
type ThreadConfig struct {
	MaxRetries int `mapstructure:"max_retries"`
}

type LogstashConfig struct {
	Level   string `mapstructure:"level"`
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
