package canvas

import (
	"github.com/paddynes2/stride-process-app/pkg/logger"
	"go.uber.org/zap"
)

// Notifier receives transient, non-blocking user notifications (toasts).
// Mutation failures are reported here and never rolled back locally.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier renders notifications into the structured log. Embedders
// with a real UI supply their own Notifier.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { logger.L().Info("notice", zap.String("message", msg)) }
func (LogNotifier) Error(msg string)   { logger.L().Warn("notice", zap.String("message", msg)) }
