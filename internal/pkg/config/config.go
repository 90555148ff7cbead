package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		OverdueAlertInterval time.Duration
		OverdueAlertWindow   time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		NotificationSend NotificationSend
	}

	NotificationSend struct {
		ProcessTimeout time.Duration
	}

	Security struct {
		AccessTokenSecret string
		LinkTokenSecret   string
		AccessTokenTTL    time.Duration
	}

	Mail struct {
		Host     string
		Port     int
		Username string
		Password string
		From     string
	}

	App struct {
		Domain string
	}

	Config struct {
		App      App
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Redis    Redis
		Kafka    Kafka
		Security Security
		Mail     Mail
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	overdueInterval, err := osGetEnvDuration("BACKGROUND_OVERDUE_ALERT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	overdueWindow, err := osGetEnvDuration("BACKGROUND_OVERDUE_ALERT_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	notificationSendTimeout, err := osGetEnvDuration("KAFKA_HANDLER_NOTIFICATION_SEND_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	accessTokenTTL, err := osGetEnvDuration("SECURITY_ACCESS_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	mailPort, err := osGetInt("MAIL_PORT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		App: App{
			Domain: os.Getenv("APP_DOMAIN"),
		},
		Tasks: Tasks{
			OverdueAlertInterval: overdueInterval,
			OverdueAlertWindow:   overdueWindow,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				NotificationSend: NotificationSend{
					ProcessTimeout: notificationSendTimeout,
				},
			},
		},
		Security: Security{
			AccessTokenSecret: os.Getenv("SECURITY_ACCESS_TOKEN_SECRET"),
			LinkTokenSecret:   os.Getenv("SECURITY_LINK_TOKEN_SECRET"),
			AccessTokenTTL:    accessTokenTTL,
		},
		Mail: Mail{
			Host:     os.Getenv("MAIL_HOST"),
			Port:     mailPort,
			Username: os.Getenv("MAIL_USERNAME"),
			Password: os.Getenv("MAIL_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.App.Domain == "" {
		return errors.New("APP_DOMAIN is required")
	}

	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Tasks.OverdueAlertInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OVERDUE_ALERT_INTERVAL is required")
	}
	if cfg.Tasks.OverdueAlertWindow == time.Duration(0) {
		return errors.New("BACKGROUND_OVERDUE_ALERT_WINDOW is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.NotificationSend.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_NOTIFICATION_SEND_PROCESS_TIMEOUT is required")
	}

	if cfg.Security.AccessTokenSecret == "" {
		return errors.New("SECURITY_ACCESS_TOKEN_SECRET is required")
	}
	if cfg.Security.LinkTokenSecret == "" {
		return errors.New("SECURITY_LINK_TOKEN_SECRET is required")
	}
	if cfg.Security.AccessTokenTTL == time.Duration(0) {
		return errors.New("SECURITY_ACCESS_TOKEN_TTL is required")
	}

	if cfg.Mail.Host == "" {
		return errors.New("MAIL_HOST is required")
	}
	if cfg.Mail.Port == 0 {
		return errors.New("MAIL_PORT is required")
	}
	if cfg.Mail.From == "" {
		return errors.New("MAIL_FROM is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
