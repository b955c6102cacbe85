package constants

// NATS subjects
const (
	SubjectDriverLocation     = "driver.location"
	SubjectTaskGroupAssigned  = "dispatch.taskgroup.assigned"
	QueueGroupDispatchService = "dispatch-service"
)
