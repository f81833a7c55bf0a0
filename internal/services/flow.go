package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
)

// FlowWriter defines the repository methods needed to persist flows.
type FlowWriter interface {
	Save(ctx context.Context, walletID int64, amount decimal.Decimal, transactionID int64, state models.State) (*models.FlowDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FlowEvent is the message published after a flow has been persisted.
type FlowEvent struct {
	FlowID        int64        `json:"flow_id"`
	WalletID      int64        `json:"wallet_id"`
	TransactionID int64        `json:"transaction_id"`
	Amount        string       `json:"amount"`
	State         models.State `json:"state"`
	Timestamp     int64        `json:"timestamp"`
}

// FlowService persists flows and publishes them to Kafka.
type FlowService struct {
	writeRepo   FlowWriter
	kafkaWriter KafkaWriter
}

// NewFlowService creates a new FlowService. A nil kafkaWriter disables publishing.
func NewFlowService(writeRepo FlowWriter, kafkaWriter KafkaWriter) *FlowService {
	return &FlowService{
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Create persists a flow and, on success, publishes a FlowEvent. Publishing is
// best effort: a broker failure never undoes a committed flow.
func (s *FlowService) Create(ctx context.Context, walletID int64, amount decimal.Decimal, transactionID int64, state models.State) (*models.FlowDB, error) {
	flow, err := s.writeRepo.Save(ctx, walletID, amount, transactionID, state)
	if err != nil {
		logger.Log.Errorw("failed to save flow", "walletID", walletID, "amount", amount, "transactionID", transactionID, "error", err)
		return nil, err
	}

	s.publishFlowEvent(ctx, flow)

	return flow, nil
}

// publishFlowEvent publishes a persisted flow to Kafka.
func (s *FlowService) publishFlowEvent(ctx context.Context, flow *models.FlowDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "flow_id", flow.ID)
		return
	}

	event := FlowEvent{
		FlowID:        flow.ID,
		WalletID:      flow.WalletID,
		TransactionID: flow.TransactionID,
		Amount:        flow.Amount.String(),
		State:         flow.State,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal flow event", "flow_id", flow.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(flow.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish flow event", "flow_id", flow.ID, "error", err)
	} else {
		logger.Log.Infow("flow event published", "flow_id", flow.ID, "amount", event.Amount)
	}
}
