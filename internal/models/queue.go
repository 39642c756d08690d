package models

// QueueStatus is the barista-facing display state. It is derived from
// OrderStatus and elapsed time and never stored.
type QueueStatus string

const (
	QueueNew      QueueStatus = "New"
	QueueBrewing  QueueStatus = "Brewing"
	QueueCritical QueueStatus = "Critical"
	QueueReady    QueueStatus = "Ready"
)

type QueueAction string

const (
	ActionStartBrewing  QueueAction = "start-brewing"
	ActionMarkReady     QueueAction = "mark-ready"
	ActionCompleteOrder QueueAction = "complete-order"
	ActionCancelOrder   QueueAction = "cancel-order"
)

type QueueLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderQueueItem struct {
	ID             string      `json:"id"`
	CustomerName   string      `json:"customer_name"`
	OrderNumber    string      `json:"order_number"`
	Items          []QueueLine `json:"items"`
	Customizations []string    `json:"customizations"`
	Status         QueueStatus `json:"status"`
	Timer          string      `json:"timer"`
	ImageURL       string      `json:"image"`
}
