package usecase

//go:generate mockgen -source=activity_usecase.go -destination=../adapter/http/handlers/mocks/activity_usecase_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/identity"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase/interfaces"
)

// ActivityEvent is one mutation to be written to the activity log.
type ActivityEvent struct {
	Action         entities.ActivityAction
	ModuleType     entities.EntityType
	ReferenceID    string
	Details        any
	Status         string
	PreviousStatus string
}

// IActivityLogger appends audit entries. Recording never fails the caller:
// the mutation being audited has already been written.
type IActivityLogger interface {
	Record(ctx context.Context, ev ActivityEvent) entities.ActivityLogEntry
}

// IActivityUseCase exposes the read-only view of the activity log.
type IActivityUseCase interface {
	List(ctx context.Context, moduleType, referenceID string) ([]entities.ActivityLogEntry, error)
}

type ActivityLogger struct {
	repo interfaces.IActivityLogRepository
	ids  interfaces.IIDGenerator
	now  func() time.Time
}

var (
	_ IActivityLogger  = (*ActivityLogger)(nil)
	_ IActivityUseCase = (*ActivityLogger)(nil)
)

func NewActivityLogger(repo interfaces.IActivityLogRepository, ids interfaces.IIDGenerator) *ActivityLogger {
	return &ActivityLogger{repo: repo, ids: ids, now: func() time.Time { return time.Now().UTC() }}
}

func (l *ActivityLogger) Record(ctx context.Context, ev ActivityEvent) entities.ActivityLogEntry {
	logger := logging.Component(ctx, "activity", "usecase")
	now := l.now()

	id, err := l.ids.NextID(ctx, entities.EntityActivityLog, "")
	if err != nil {
		logger.Warn().Err(err).Msg("activity id generation failed, using clock")
		id = "LOG-" + strconv.FormatInt(now.UnixMilli(), 10)
	}

	entry := entities.ActivityLogEntry{
		LogID:          id,
		Timestamp:      now,
		Action:         ev.Action,
		UserEmail:      identity.Actor(ctx),
		ModuleType:     ev.ModuleType,
		ReferenceID:    ev.ReferenceID,
		Status:         ev.Status,
		PreviousStatus: ev.PreviousStatus,
	}
	if ev.Details != nil {
		raw, err := json.Marshal(ev.Details)
		if err != nil {
			logger.Warn().Err(err).Str("action", string(ev.Action)).Msg("activity details not serializable")
		} else {
			entry.Details = raw
		}
	}

	if err := l.repo.Append(ctx, entry); err != nil {
		logger.Error().Err(err).
			Str("action", string(ev.Action)).
			Str("reference_id", ev.ReferenceID).
			Msg("activity log append failed")
		return entry
	}
	logger.Debug().Str("log_id", id).Str("action", string(ev.Action)).Msg("activity recorded")
	return entry
}

func (l *ActivityLogger) List(ctx context.Context, moduleType, referenceID string) ([]entities.ActivityLogEntry, error) {
	entries, err := l.repo.List(ctx, interfaces.ActivityFilter{
		ModuleType:  entities.EntityType(strings.ToUpper(strings.TrimSpace(moduleType))),
		ReferenceID: strings.TrimSpace(referenceID),
	})
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return entries, nil
}
