package service

import (
	"context"
	"time"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.uber.org/zap"
)

type Sender func(ctx context.Context, ev *model.OutboxEvent) error

// OutboxRelayer 定时把 pending 事件批量投递出去
type OutboxRelayer struct {
	repo      repository.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
	log       *zap.Logger
}

func NewOutboxRelayer(repo repository.OutboxRepository, sender Sender, log *zap.Logger) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
		log:       log,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		r.log.Warn("outbox query failed", zap.Error(err))
		return
	}
	for i := range rows {
		ev := rows[i]
		if err := r.sender(ctx, &ev); err != nil {
			r.log.Warn("outbox send failed", zap.String("event", ev.EventType), zap.Error(err))
			_ = r.repo.MarkRetry(ctx, ev.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ev.ID)
	}
}

// KafkaSender 以实体 id 为分区键投到 kafka
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ev *model.OutboxEvent) error {
		return p.Send(ctx, ev.Key, []byte(ev.Payload))
	}
}

// LogSender kafka 未配置时的兜底，只打日志
func LogSender(log *zap.Logger) Sender {
	return func(ctx context.Context, ev *model.OutboxEvent) error {
		log.Info("outbox event",
			zap.String("type", ev.EventType),
			zap.String("key", ev.Key),
			zap.String("payload", ev.Payload))
		return nil
	}
}
