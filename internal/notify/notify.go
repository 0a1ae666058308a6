package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkarenzi/ikimina/internal/config"
	"github.com/mkarenzi/ikimina/pkg/clients"
)

const sendTimeout = time.Second * 30

// Event describes a finalized cycle. Fan-out is best-effort: delivery
// failures are logged and never surface to the finalize caller.
type Event struct {
	ID           uuid.UUID       `json:"id"`
	GroupID      int             `json:"group_id"`
	GroupName    string          `json:"group_name"`
	CycleNumber  int             `json:"cycle_number"`
	PayoutAmount decimal.Decimal `json:"payout_amount"`
	Currency     string          `json:"currency"`
	Recipients   []string        `json:"-"`
}

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.SMSGateway + "/api/sms",
		client:     client,
		workerPool: NewWorkerPool(4),
	}
}

// CycleFinalized queues the fan-out and returns immediately. Called after the
// finalize transaction commits, never inside it.
func (s *Service) CycleFinalized(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	err := s.workerPool.AddTask(ctx, func() error {
		defer cancel()
		return s.fanOut(ctx, event)
	})
	if err != nil {
		cancel()
		zap.L().Warn("dropping cycle_finalized notification", zap.Int("groupID", event.GroupID), zap.Error(err))
	}
}

func (s *Service) fanOut(ctx context.Context, event Event) error {
	message := fmt.Sprintf("Cycle %d of %s closed. Payout of %s %s is ready for collection.",
		event.CycleNumber, event.GroupName, event.PayoutAmount.StringFixed(2), event.Currency)

	var g errgroup.Group
	for _, recipient := range event.Recipients {
		recipient := recipient
		if recipient == "" {
			continue
		}
		g.Go(func() error {
			return s.send(ctx, smsRequest{To: recipient, Message: message})
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("cycle_finalized fan-out for group %d: %w", event.GroupID, err)
	}
	zap.L().Info("cycle_finalized notifications sent",
		zap.Int("groupID", event.GroupID),
		zap.Int("cycle", event.CycleNumber),
		zap.Int("recipients", len(event.Recipients)),
	)
	return nil
}

func (s *Service) send(ctx context.Context, sms smsRequest) error {
	body, err := json.Marshal(sms)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}
