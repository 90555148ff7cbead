package entities

type NotificationKind string

const (
	NotificationAccountVerify  NotificationKind = "account.verify"
	NotificationShipmentPlaced NotificationKind = "shipment.placed"
	NotificationReviewRequest  NotificationKind = "shipment.review_request"
	NotificationOverdueAlert   NotificationKind = "shipment.overdue_alert"
)

func (k NotificationKind) String() string {
	return string(k)
}

// Notification is a deferred outbound effect. Services return or publish
// it after their transaction commits; delivery is best effort and never
// fails the operation that produced it.
type Notification struct {
	Kind      NotificationKind
	Recipient string
	Subject   string
	Context   map[string]string
}
