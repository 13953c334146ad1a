package notifier

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/pipsmade/platform/internal/config"
	notificationmodel "github.com/pipsmade/platform/internal/notification/model"
	transactionmodel "github.com/pipsmade/platform/internal/transaction/model"
)

// WebhookNotifier posts notification messages to the configured operator
// webhook (a mail relay). Delivery is best-effort: every failure is logged and
// swallowed, financial workflows never wait on or fail with it.
type WebhookNotifier struct {
	client        *resty.Client
	limiter       ratelimit.Limiter
	operatorEmail string
	enabled       bool
	logger        *zap.Logger
}

type message struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func NewWebhookNotifier(cfg *config.Config, logger *zap.Logger) *WebhookNotifier {
	client := resty.New()
	client.SetBaseURL(cfg.OperatorWebhookURL)

	return &WebhookNotifier{
		client:        client,
		limiter:       ratelimit.New(10),
		operatorEmail: cfg.OperatorEmail,
		enabled:       cfg.OperatorWebhookURL != "",
		logger:        logger,
	}
}

func (w *WebhookNotifier) WithdrawalSubmitted(request transactionmodel.WithdrawalRequest) {
	w.dispatch(message{
		Recipient: w.operatorEmail,
		Subject:   "New withdrawal request",
		Body: fmt.Sprintf("User %s requested a withdrawal of %s %s to %s (%s).",
			request.UserLogin, request.Amount, request.AssetCode, request.DestinationAddress, request.Network),
	})
}

func (w *WebhookNotifier) DepositSubmitted(request transactionmodel.DepositRequest) {
	w.dispatch(message{
		Recipient: w.operatorEmail,
		Subject:   "New deposit request",
		Body: fmt.Sprintf("User %s claims a deposit of %s %s, tx hash %s.",
			request.UserLogin, request.Amount, request.AssetCode, request.TxHash),
	})
}

func (w *WebhookNotifier) RequestDecided(notification notificationmodel.Notification) {
	w.dispatch(message{
		Recipient: notification.UserLogin,
		Subject:   notification.Title,
		Body:      notification.Message,
	})
}

func (w *WebhookNotifier) dispatch(msg message) {
	if !w.enabled {
		return
	}

	go func() {
		w.limiter.Take()

		response, err := w.client.R().SetBody(msg).Post("/api/notify")
		if err != nil {
			w.logger.Warn("notification delivery failed", zap.String("subject", msg.Subject), zap.Error(err))
			return
		}

		if response.StatusCode() != http.StatusOK {
			w.logger.Warn("notification delivery failed",
				zap.String("subject", msg.Subject), zap.Int("status", response.StatusCode()))
		}
	}()
}
