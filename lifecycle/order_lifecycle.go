package lifecycle

import "cloud-kitchen-api/models"

// Transition documents one step of the order lifecycle and who drives it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor string             `json:"actor"` // "kitchen", "rider"
}

// transitions is the documented lifecycle graph. It is informational:
// status writes are validated against per-actor status sets only, and
// concurrent writes are last-write-wins with no version check.
var transitions = []Transition{
	{From: models.StatusPending, To: models.StatusProcessing, Actor: "kitchen"},
	{From: models.StatusPending, To: models.StatusAssigned, Actor: "kitchen"},
	{From: models.StatusProcessing, To: models.StatusAssigned, Actor: "kitchen"},
	{From: models.StatusProcessing, To: models.StatusCompleted, Actor: "kitchen"},
	{From: models.StatusAssigned, To: models.StatusPicked, Actor: "rider"},
	{From: models.StatusPicked, To: models.StatusDelivering, Actor: "rider"},
	{From: models.StatusDelivering, To: models.StatusDelivered, Actor: "rider"},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: "kitchen"},
	{From: models.StatusProcessing, To: models.StatusCancelled, Actor: "kitchen"},
	{From: models.StatusAssigned, To: models.StatusCancelled, Actor: "kitchen"},
	{From: models.StatusPicked, To: models.StatusCancelled, Actor: "kitchen"},
	{From: models.StatusDelivering, To: models.StatusCancelled, Actor: "kitchen"},
}

// kitchenStatuses are the values admin/chef may write via the status endpoint.
// "assigned" is written only by the assign operation.
var kitchenStatuses = map[models.OrderStatus]bool{
	models.StatusPending:    true,
	models.StatusProcessing: true,
	models.StatusCompleted:  true,
	models.StatusCancelled:  true,
}

// riderStatuses are the values a rider may write for an order assigned to them.
var riderStatuses = map[models.OrderStatus]bool{
	models.StatusPicked:     true,
	models.StatusDelivering: true,
	models.StatusDelivered:  true,
}

var terminalStatuses = map[models.OrderStatus]bool{
	models.StatusDelivered: true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// KitchenCanSet reports whether admin/chef may set the given status.
func KitchenCanSet(s models.OrderStatus) bool {
	return kitchenStatuses[s]
}

// RiderCanSet reports whether a rider may set the given status.
func RiderCanSet(s models.OrderStatus) bool {
	return riderStatuses[s]
}

// IsTerminal reports whether a status ends the lifecycle.
func IsTerminal(s models.OrderStatus) bool {
	return terminalStatuses[s]
}

// ValidNext returns all documented next states from a given state
func ValidNext(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range transitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// AllTransitions returns the full lifecycle graph for documentation
func AllTransitions() []Transition {
	return transitions
}

// TerminalStatuses lists the lifecycle-ending states for documentation
func TerminalStatuses() []models.OrderStatus {
	return []models.OrderStatus{models.StatusDelivered, models.StatusCompleted, models.StatusCancelled}
}
