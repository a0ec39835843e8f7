package observability

const (
	MOperationRequests MetricKey = "inventory_operations_total"
	MOperationDuration MetricKey = "inventory_operation_duration_seconds"
	MSnapshotRequests  MetricKey = "snapshot_requests_total"
	MSnapshotDuration  MetricKey = "snapshot_duration_seconds"
)
