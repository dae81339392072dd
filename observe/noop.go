package observe

// NoopObserver discards all events. Useful as the default observer.
// All methods are safe for concurrent use and perform no work.
type NoopObserver struct{}

// NewNoopObserver constructs an Observer that discards all events.
func NewNoopObserver() NoopObserver { return NoopObserver{} }

func (NoopObserver) PoolStarted(_ string, _ int)  {}
func (NoopObserver) WorkerStarted(_ int)          {}
func (NoopObserver) JobStarted(_ int)             {}
func (NoopObserver) WorkerStopped(_ int, _ error) {}
func (NoopObserver) ShutdownStarted(_ string)     {}
func (NoopObserver) ShutdownCompleted(_ string)   {}
