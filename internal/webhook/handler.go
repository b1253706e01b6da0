package webhook

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"signalrelay/internal/executor"
	"signalrelay/internal/middleware"
	"signalrelay/internal/model"
	"signalrelay/internal/notify"
	"signalrelay/pkg/logger"
	"signalrelay/pkg/recorder"
	"signalrelay/pkg/validator"

	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"
)

const (
	maxBodyBytes  = 64 << 10
	notifyTimeout = 10 * time.Second
)

type Config struct {
	SignatureHeader string
	OperatorID      int64
	DedupeWindow    time.Duration
}

// 告警服务 Webhook 的接收器
type WebhookHandler struct {
	cfg      Config
	auth     *Authenticator
	executor *executor.Executor
	notifier notify.Channel
	recorder recorder.Recorder
	dedupe   *Deduper
}

func NewWebhookHandler(cfg Config, auth *Authenticator, ex *executor.Executor, notifier notify.Channel, rec recorder.Recorder) *WebhookHandler {
	if rec == nil {
		rec = recorder.NopRecorder{}
	}
	return &WebhookHandler{
		cfg:      cfg,
		auth:     auth,
		executor: ex,
		notifier: notifier,
		recorder: rec,
		dedupe:   NewDeduper(cfg.DedupeWindow),
	}
}

// Handle 验签 -> 解析 -> 去重 -> 执行 -> 通知。交易结果不影响http状态码
func (wh *WebhookHandler) Handle(r *http.Request, callback func(err error, statusCode int)) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		callback(fmt.Errorf("%w: read body: %v", model.ErrValidation, err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// 验签必须在解析之前，签名不对的请求不做任何处理
	signature := r.Header.Get(wh.cfg.SignatureHeader)
	if !wh.auth.Verify(body, signature) {
		logger.Warn("[Webhook] invalid signature", logger.Pair("ip", r.RemoteAddr))
		callback(fmt.Errorf("%w: invalid signature", model.ErrAuth), http.StatusForbidden)
		return
	}

	var req model.SignalRequest
	if err := json.Unmarshal(body, &req); err != nil {
		callback(fmt.Errorf("%w: invalid JSON: %v", model.ErrValidation, err), http.StatusBadRequest)
		return
	}
	req.Normalize()
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		callback(fmt.Errorf("%w: %s", model.ErrValidation, validator.Translate(err)), http.StatusBadRequest)
		return
	}
	sig, err := req.ToSignal(body, signature)
	if err != nil {
		callback(err, http.StatusBadRequest)
		return
	}

	if wh.dedupe.Seen(signature) {
		logger.Info("[Webhook] duplicate delivery ignored", logger.Pair("ticker", sig.Ticker), logger.Pair("action", string(sig.Action)))
		wh.notify(r.Context(), notify.FormatDuplicate(sig))
		callback(nil, http.StatusOK)
		return
	}
	logger.Info("[Webhook] Received signal", logger.Pair("ticker", sig.Ticker), logger.Pair("action", string(sig.Action)))

	out := wh.executor.Execute(r.Context(), sig)
	if out.Err != nil {
		logger.Error("[Webhook] signal failed", logger.Pair("ticker", sig.Ticker), logger.Err(out.Err))
	}

	// 通知和记录都是尽力而为，不受请求取消影响
	wh.notify(r.Context(), notify.FormatOutcome(out))
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), notifyTimeout)
	defer cancel()
	if err := wh.recorder.Record(ctx, eventFromOutcome(out, middleware.RequestIdFrom(r.Context()))); err != nil {
		logger.Warn("[Webhook] journal failed", logger.Err(err))
	}

	callback(nil, http.StatusOK)
}

func (wh *WebhookHandler) notify(parent context.Context, text string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), notifyTimeout)
	defer cancel()
	if err := wh.notifier.Send(ctx, wh.cfg.OperatorID, text); err != nil {
		logger.Warn("[Webhook] notify failed", logger.Err(err))
	}
}
