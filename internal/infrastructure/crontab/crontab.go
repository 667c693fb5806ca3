package crontab

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"gradpath-server/internal/config"
	"gradpath-server/internal/domain/conversation"
	"gradpath-server/internal/infrastructure/logger"
	"gradpath-server/internal/utils/platformerrors"
)

const (
	// CronJobTimeout bounds each job execution.
	CronJobTimeout = 10 * time.Minute

	// retentionSchedule runs the conversation prune once a day.
	retentionSchedule = "0 3 * * *"
)

type Crontab struct {
	ctab          *crontab.Crontab
	conversations *conversation.Service
}

func NewCrontab(conversations *conversation.Service) *Crontab {
	return &Crontab{
		ctab:          crontab.New(),
		conversations: conversations,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg != nil && cfg.RetentionJobEnabled {
		// execute once on server start
		c.pruneIdleConversations(ctx)

		if err := c.ctab.AddJob(retentionSchedule, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.pruneIdleConversations(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add retention job")
		}
		log.Info().Str("schedule", retentionSchedule).Msg("Conversation retention job scheduled")
	}

	// Schedule environment reload job
	if err := c.ctab.AddJob("* * * * *", func() {
		config.Load()
	}); err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add env reload job")
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) pruneIdleConversations(ctx context.Context) {
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg == nil {
		return
	}
	cutoff := time.Now().Add(-cfg.ConversationRetention)

	deleted, err := c.conversations.PruneIdle(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Failed to prune idle conversations")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Pruned idle conversations")
	}
}
