package observe

import (
	"github.com/sirupsen/logrus"
)

// LogObserver logs pool lifecycle events through logrus.
// Events carry the pool name and worker id as structured fields.
type LogObserver struct {
	log logrus.FieldLogger
}

// NewLogObserver constructs a LogObserver writing to l.
// If l is nil, the logrus standard logger is used.
func NewLogObserver(l logrus.FieldLogger) *LogObserver {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogObserver{log: l}
}

func (o *LogObserver) PoolStarted(pool string, size int) {
	o.log.WithFields(logrus.Fields{"pool": pool, "size": size}).Info("pool started")
}

func (o *LogObserver) WorkerStarted(worker int) {
	o.log.WithField("worker", worker).Info("worker started")
}

func (o *LogObserver) JobStarted(worker int) {
	o.log.WithField("worker", worker).Debug("worker got a job; executing")
}

func (o *LogObserver) WorkerStopped(worker int, err error) {
	if err != nil {
		o.log.WithField("worker", worker).WithError(err).Error("worker terminated")
		return
	}
	o.log.WithField("worker", worker).Info("worker disconnected; shutting down")
}

func (o *LogObserver) ShutdownStarted(pool string) {
	o.log.WithField("pool", pool).Info("shutting down workers")
}

func (o *LogObserver) ShutdownCompleted(pool string) {
	o.log.WithField("pool", pool).Info("shutdown complete")
}
