package dependency

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Alcunha-R/demo-api-stone-host/internal/config"
	"github.com/Alcunha-R/demo-api-stone-host/internal/logger"
)

//go:generate moq -rm -out gen/notifier_mock.go -pkg dependencygen -fmt goimports . Notifier

// Notifier sends operational alerts to a chat channel. Delivery is best effort:
// implementations never return errors to the caller, they log them.
type Notifier interface {
	Notify(ctx context.Context, title, message string)
}

// NewNotifier returns the WhatsApp notifier when the gateway is configured, otherwise a log-only notifier
func NewNotifier(cfg config.Notifier, log *zap.Logger) Notifier {
	if !cfg.Enabled() {
		return NewLogNotifier(log)
	}
	return NewWhatsAppNotifier(cfg, &http.Client{Timeout: cfg.Timeout}, log)
}

// LogNotifier only writes alerts to the log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier instance
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, title, message string) {
	n.logger.Warn("Alert",
		zap.String("title", title),
		zap.String("message", message),
		zap.String(logger.TracingKey, logger.TraceIDFromContext(ctx)))
}

// WhatsAppNotifier posts alerts to a WPPConnect-compatible gateway.
// Each Notify call is delivered in its own goroutine; Close waits for pending deliveries.
type WhatsAppNotifier struct {
	cfg    config.Notifier
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
	wg     sync.WaitGroup
}

// NewWhatsAppNotifier creates a new WhatsAppNotifier instance
func NewWhatsAppNotifier(cfg config.Notifier, client *http.Client, log *zap.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		cfg:    cfg,
		client: client,
		logger: log,
		now:    time.Now,
	}
}

type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	IsGroup bool   `json:"isGroup"`
}

// Notify schedules the alert and returns immediately
func (n *WhatsAppNotifier) Notify(ctx context.Context, title, message string) {
	n.logger.Info("Sending alert",
		zap.String("title", title),
		zap.String("message", message))

	sendCtx := context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.send(sendCtx, title, message); err != nil {
			logger.Error(sendCtx, "Failed to send alert",
				zap.String("title", title),
				zap.Error(err))
		}
	}()
}

// Close waits for alerts that are still being delivered
func (n *WhatsAppNotifier) Close() {
	n.wg.Wait()
}

func (n *WhatsAppNotifier) send(ctx context.Context, title, message string) error {
	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(sendMessageRequest{
		Phone:   n.cfg.Phone,
		Message: n.format(title, message),
		IsGroup: n.cfg.IsGroup,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s/send-message", strings.TrimRight(n.cfg.BaseURL, "/"), n.cfg.Route)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+n.cfg.Token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway responded with status %d", resp.StatusCode)
	}

	return nil
}

func (n *WhatsAppNotifier) format(title, message string) string {
	return fmt.Sprintf("*_%s_*\n\n`%s` \n %s \n> %s",
		n.cfg.Header, title, n.now().Format("02/01/2006 15:04:05"), message)
}
