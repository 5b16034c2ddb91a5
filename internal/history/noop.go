package history

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTransfers(_ *TransferRecord) error  { return nil }
func (n *NoopRecorder) RecordChipActivation(_ *ChipRecord) error { return nil }
func (n *NoopRecorder) Close() error                             { return nil }
