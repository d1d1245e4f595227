package tasks

import (
	"context"
	"encoding/json"

	"worklink/models"
	"worklink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReservationOutcome = "reservation:outcome"

// NewReservationOutcomeTask builds the queue task for a settled reservation
// attempt or cancellation.
func NewReservationOutcomeTask(outcome models.ReservationOutcome) (*asynq.Task, error) {
	b, err := json.Marshal(outcome)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReservationOutcome, b), nil
}

// AsynqOutcomeNotifier enqueues reservation outcomes for the notification
// module. Enqueueing is best-effort: a queue failure never fails the
// reservation that triggered it.
type AsynqOutcomeNotifier struct {
	Client *asynq.Client
}

func NewAsynqOutcomeNotifier(client *asynq.Client) *AsynqOutcomeNotifier {
	return &AsynqOutcomeNotifier{Client: client}
}

func (n *AsynqOutcomeNotifier) NotifyOutcome(ctx context.Context, outcome models.ReservationOutcome) {
	task, err := NewReservationOutcomeTask(outcome)
	if err != nil {
		utils.GetLogger().Error("failed to build outcome task", zap.Error(err))
		return
	}
	if _, err := n.Client.EnqueueContext(ctx, task); err != nil {
		utils.GetLogger().Error("failed to enqueue outcome task",
			zap.String("event", outcome.Event), zap.Error(err))
	}
}
