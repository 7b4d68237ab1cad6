package config

// Config 配置主体，每个服务进程只读取自己关心的部分
type Config struct {
	Post      ServiceConfig  `mapstructure:"post"`
	Comment   ServiceConfig  `mapstructure:"comment"`
	Review    ServiceConfig  `mapstructure:"review"`
	Gateway   GatewayConfig  `mapstructure:"gateway"`
	Redis     RedisConfig    `mapstructure:"redis"`
	Kafka     KafkaConfig    `mapstructure:"kafka"`
	Notify    NotifyConsumer `mapstructure:"notify_consumer"`
	PostAPI   PostAPIConfig  `mapstructure:"post_api"`
	Outbox    OutboxConfig   `mapstructure:"outbox"`
}

// ServiceConfig 单个 HTTP 服务配置
type ServiceConfig struct {
	Port int      `mapstructure:"port"`
	DB   DBConfig `mapstructure:"database"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// GatewayConfig 网关配置，按前缀转发
type GatewayConfig struct {
	Port   int            `mapstructure:"port"`
	Routes []GatewayRoute `mapstructure:"routes"`
}

type GatewayRoute struct {
	Prefix string `mapstructure:"prefix"`
	Target string `mapstructure:"target"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Topic    string         `mapstructure:"topic"`
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

// NotifyConsumer 通知消费者配置
type NotifyConsumer struct {
	GroupID string `mapstructure:"group_id"`
}

// PostAPIConfig 文章服务客户端配置
type PostAPIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// OutboxConfig 审核出站任务配置
type OutboxConfig struct {
	Cron        string `mapstructure:"cron"`
	BatchSize   int    `mapstructure:"batch_size"`
	MaxAttempts int    `mapstructure:"max_attempts"`
}
