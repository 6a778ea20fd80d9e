package application

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cardpay-system/domain/constants"
	"cardpay-system/domain/entities"
	"cardpay-system/domain/repositories"
	"cardpay-system/utils/gpooling"
	"cardpay-system/utils/helpers"
)

// AuditRecorder persists the masked audit trail asynchronously. Log writes
// are best-effort by contract: a broken log store must never abort or roll
// back the payment it describes.
type AuditRecorder struct {
	Logs   repositories.TransactionLogRepository
	IPool  gpooling.IPool
	Logger *zap.Logger
}

func NewAuditRecorder(logs repositories.TransactionLogRepository, pool gpooling.IPool, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{
		Logs:   logs,
		IPool:  pool,
		Logger: logger,
	}
}

// Start inserts the open entry. The value is copied before the task is
// submitted because the transport keeps mutating the original until Finish.
func (r *AuditRecorder) Start(entry *entities.TransactionLogEntry) {
	snapshot := *entry
	r.IPool.Submit(func() {
		if err := r.Logs.Create(helpers.ContextWithTimeOut(), &snapshot); err != nil {
			r.logWriteFailure("create", snapshot.CorrelationID, err)
		}
	})
}

func (r *AuditRecorder) Finish(entry *entities.TransactionLogEntry) {
	snapshot := *entry
	r.IPool.Submit(func() {
		if err := r.Logs.Complete(helpers.ContextWithTimeOut(), &snapshot); err != nil {
			r.logWriteFailure("complete", snapshot.CorrelationID, err)
		}
	})
}

func (r *AuditRecorder) logWriteFailure(stage, correlationID string, err error) {
	r.Logger.With(zap.Error(err)).With(zapcore.Field{
		Key:    "stage",
		Type:   zapcore.StringType,
		String: stage,
	}).With(zapcore.Field{
		Key:    "correlation_id",
		Type:   zapcore.StringType,
		String: correlationID,
	}).Error(constants.SERVICE_PAYMENT_LOG_ERROR + "audit write failed")
}
