package audithandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	"staffhub-backend/db"
	auditstore "staffhub-backend/lib/audit/store"
	"staffhub-backend/lib/metrics"
	auditapimodels "staffhub-backend/models/api/audit"
	dbmodels "staffhub-backend/models/db"
)

type Provider interface {
	// Record enqueues an audit row. It never blocks the caller and never
	// returns an error: a full queue drops the record.
	Record(actorID, action, resourceType, resourceID string, phi bool, details map[string]interface{})
	List(filter auditapimodels.AuditLogFilter) (list []auditapimodels.AuditLogView, rowCount int64, err error)
}

var Instance Provider

func NewHandler(ctx context.Context) {
	i := &impl{
		store: auditstore.NewInstance(db.DB),
		queue: make(chan dbmodels.AuditLog, 1024),
	}
	Instance = i
	go i.writeLoop(ctx)
}

type impl struct {
	store auditstore.Provider
	queue chan dbmodels.AuditLog
}

func (i *impl) Record(actorID, action, resourceType, resourceID string, phi bool, details map[string]interface{}) {
	rec := dbmodels.AuditLog{
		ActorID:      actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		PHI:          phi,
		Details:      details,
	}
	select {
	case i.queue <- rec:
	default:
		metrics.AuditDropped.Inc()
		log.WithField("action", action).Warn("audit queue full, record dropped")
	}
}

// writeLoop drains the queue; write failures are logged and swallowed so
// auditing never blocks or fails a user-facing operation.
func (i *impl) writeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case rec := <-i.queue:
					i.write(rec)
				default:
					return
				}
			}
		case rec := <-i.queue:
			i.write(rec)
		}
	}
}

func (i *impl) write(rec dbmodels.AuditLog) {
	if err := i.store.Create(rec); err != nil {
		log.WithError(err).
			WithField("action", rec.Action).
			Error("failed to persist audit record")
	}
}

func (i *impl) List(filter auditapimodels.AuditLogFilter) (list []auditapimodels.AuditLogView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]auditapimodels.AuditLogView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, auditapimodels.AuditLogView{
			ID:           rec.ID,
			ActorID:      rec.ActorID,
			Action:       rec.Action,
			ResourceType: rec.ResourceType,
			ResourceID:   rec.ResourceID,
			PHI:          rec.PHI,
			Details:      rec.Details,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return list, rowCount, nil
}
