package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// 配置加载（webhook密钥、Telegram、券商等）

const (
	BrokerSim = "sim"
	BrokerOkx = "okx"
)

type WebhookConfig struct {
	Secret          string        `yaml:"secret" env:"WEBHOOK_SECRET"`
	SignatureHeader string        `yaml:"signature-header"`
	DedupeWindow    time.Duration `yaml:"dedupe-window"` // 相同签名在窗口内重复投递只确认不执行，0表示关闭
}

type TelegramConfig struct {
	Token     string  `yaml:"token" env:"TELEGRAM_TOKEN"`
	ChatID    string  `yaml:"chat-id" env:"TELEGRAM_CHAT_ID"` // 唯一的操作员
	RateLimit float64 `yaml:"rate-limit"`                     // 每秒最多发送的消息数
}

type Okx struct {
	ApiKey    string `yaml:"apiKey" env:"OKX_API_KEY"`
	SecretKey string `yaml:"secretKey" env:"OKX_SECRET_KEY"`
	Password  string `yaml:"password" env:"OKX_PASSPHRASE"`
	Simulated bool   `yaml:"simulated"`
	Quote     string `yaml:"quote"` // 计价币种，如 USDT
}

type SimConfig struct {
	Cash   string            `yaml:"cash"`
	Prices map[string]string `yaml:"prices"`
}

type BrokerConfig struct {
	Kind    string        `yaml:"kind"` // sim | okx
	Timeout time.Duration `yaml:"timeout"`
	Okx     Okx           `yaml:"okx"`
	Sim     SimConfig     `yaml:"sim"`
}

type SessionConfig struct {
	IdleTimeout time.Duration `yaml:"idle-timeout"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

type KafkaConfig struct {
	Broker string `yaml:"broker" env:"KAFKA_BROKER"`
	Topic  string `yaml:"topic"`
}

// JournalConfig 决策记录另写一份到本地jsonl文件，空表示不写
type JournalConfig struct {
	File string `yaml:"file"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen" env:"LISTEN"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Webhook  WebhookConfig  `yaml:"webhook"`
	Telegram TelegramConfig `yaml:"telegram"`
	Broker   BrokerConfig   `yaml:"broker"`
	Session  SessionConfig  `yaml:"session"`
	Log      LogConfig      `yaml:"log"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Journal  JournalConfig  `yaml:"journal"`
}

var AppConfig Config

// LoadConfig 读取yaml，再用环境变量覆盖，最后校验
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	AppConfig = *cfg
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Read config file error %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		AppName:      "signal-relay",
		Listen:       ":8000",
		Mode:         "release",
		Language:     "en",
		MaxPingCount: 10,
		Webhook: WebhookConfig{
			SignatureHeader: "X-Signature",
		},
		Telegram: TelegramConfig{
			RateLimit: 20,
		},
		Broker: BrokerConfig{
			Kind:    BrokerSim,
			Timeout: 10 * time.Second,
			Okx:     Okx{Quote: "USDT"},
			Sim:     SimConfig{Cash: "10000"},
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Kafka: KafkaConfig{
			Topic: "trade_decisions",
		},
	}
}

// OperatorID 操作员的Telegram chat id
func (c *Config) OperatorID() (int64, error) {
	return cast.ToInt64E(strings.TrimSpace(c.Telegram.ChatID))
}

func (c *Config) Validate() error {
	var errs error
	if c.Listen == "" {
		errs = multierr.Append(errs, errors.New("listen is required"))
	}
	if c.Webhook.Secret == "" {
		errs = multierr.Append(errs, errors.New("webhook.secret is required"))
	}
	if c.Webhook.SignatureHeader == "" {
		errs = multierr.Append(errs, errors.New("webhook.signature-header is required"))
	}
	if c.Webhook.DedupeWindow < 0 {
		errs = multierr.Append(errs, errors.New("webhook.dedupe-window must not be negative"))
	}
	if c.Telegram.ChatID == "" {
		errs = multierr.Append(errs, errors.New("telegram.chat-id is required"))
	} else if _, err := c.OperatorID(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("telegram.chat-id: %w", err))
	}
	if c.Telegram.RateLimit <= 0 {
		errs = multierr.Append(errs, errors.New("telegram.rate-limit must be positive"))
	}
	if c.Kafka.Broker != "" && c.Kafka.Topic == "" {
		errs = multierr.Append(errs, errors.New("kafka.topic is required when kafka.broker is set"))
	}
	if c.Session.IdleTimeout < 0 {
		errs = multierr.Append(errs, errors.New("session.idle-timeout must not be negative"))
	}

	switch c.Broker.Kind {
	case BrokerSim:
		if _, err := decimal.NewFromString(c.Broker.Sim.Cash); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("broker.sim.cash: %w", err))
		}
		for ticker, px := range c.Broker.Sim.Prices {
			if _, err := decimal.NewFromString(px); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("broker.sim.prices.%s: %w", ticker, err))
			}
		}
	case BrokerOkx:
		if c.Broker.Okx.ApiKey == "" || c.Broker.Okx.SecretKey == "" || c.Broker.Okx.Password == "" {
			errs = multierr.Append(errs, errors.New("broker.okx apiKey, secretKey and password are required"))
		}
		if c.Broker.Okx.Quote == "" {
			errs = multierr.Append(errs, errors.New("broker.okx.quote is required"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown broker.kind %q", c.Broker.Kind))
	}
	return errs
}
