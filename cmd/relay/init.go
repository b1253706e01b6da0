package api

import (
	"fmt"

	"signalrelay/conf"
	"signalrelay/internal/command"
	"signalrelay/internal/exchange"
	"signalrelay/internal/executor"
	"signalrelay/internal/handler/telegram"
	whhandler "signalrelay/internal/handler/webhook"
	"signalrelay/internal/notify"
	"signalrelay/internal/preset"
	"signalrelay/internal/router"
	"signalrelay/internal/secret"
	"signalrelay/internal/session"
	"signalrelay/internal/webhook"
	"signalrelay/pkg/kafka"
	"signalrelay/pkg/logger"
	"signalrelay/pkg/recorder"
)

// App 组装好的服务，Close 在shutdown时释放资源
type App struct {
	Router   Router
	Recorder recorder.Recorder
}

func (a *App) Close() error {
	return a.Recorder.Close()
}

func InitApp(cfg *conf.Config) (*App, error) {
	operatorID, err := cfg.OperatorID()
	if err != nil {
		return nil, fmt.Errorf("telegram.chat-id: %w", err)
	}

	// 进程内状态，重启即丢失
	vault := secret.NewVault(cfg.Webhook.Secret)
	presets := preset.NewRegistry()
	sessions := session.NewManager(presets, cfg.Session.IdleTimeout)

	gateway, err := exchange.NewGateway(cfg.Broker)
	if err != nil {
		return nil, err
	}

	notifier, err := newNotifier(cfg.Telegram)
	if err != nil {
		return nil, err
	}

	rec, err := newRecorder(cfg)
	if err != nil {
		return nil, err
	}

	wh := webhook.NewWebhookHandler(webhook.Config{
		SignatureHeader: cfg.Webhook.SignatureHeader,
		OperatorID:      operatorID,
		DedupeWindow:    cfg.Webhook.DedupeWindow,
	}, webhook.NewAuthenticator(vault), executor.NewExecutor(presets, gateway), notifier, rec)

	tg := telegram.NewHandler(operatorID, command.NewRouter(vault, presets, sessions), notifier)

	return &App{
		Router:   router.NewApiRouter(whhandler.NewHandler(wh), tg),
		Recorder: rec,
	}, nil
}

func newNotifier(cfg conf.TelegramConfig) (notify.Channel, error) {
	if cfg.Token == "" {
		logger.Warn("telegram.token not set, notifications only go to the log")
		return notify.LogChannel{}, nil
	}
	ch, err := notify.NewTelegramChannel(cfg.Token, cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func newRecorder(cfg *conf.Config) (recorder.Recorder, error) {
	var recs recorder.Multi
	if cfg.Kafka.Broker != "" {
		logger.Infof("decision journal -> kafka %s/%s", cfg.Kafka.Broker, cfg.Kafka.Topic)
		recs = append(recs, recorder.NewKafkaRecorder(kafka.NewKafkaProducer(cfg.Kafka.Broker, cfg.Kafka.Topic)))
	}
	if cfg.Journal.File != "" {
		fr, err := recorder.NewJSONFileRecorder(cfg.Journal.File)
		if err != nil {
			return nil, fmt.Errorf("journal.file: %w", err)
		}
		logger.Infof("decision journal -> %s", cfg.Journal.File)
		recs = append(recs, fr)
	}
	if len(recs) == 0 {
		return recorder.NopRecorder{}, nil
	}
	return recs, nil
}
