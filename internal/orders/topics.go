package orders

const (
	TopicOrderApproved = "order.approved"
	TopicOrderFailed   = "order.failed"
)

// Partition key = order_id, so all events for one order stay ordered.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
