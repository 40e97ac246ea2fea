package domain

import "fmt"

// OrderStatus indicates the workflow state of a purchase order.
// The set of values is closed; nothing outside it is ever persisted.
type OrderStatus string

const (
	StatusDraft              OrderStatus = "DRAFT"
	StatusSubmitted          OrderStatus = "SUBMITTED"
	StatusInReview           OrderStatus = "IN_REVIEW"
	StatusRevised            OrderStatus = "REVISED"
	StatusApproved           OrderStatus = "APPROVED"
	StatusRejected           OrderStatus = "REJECTED"
	StatusCancelled          OrderStatus = "CANCELLED"
	StatusClosed             OrderStatus = "CLOSED"
	StatusPartiallyDelivered OrderStatus = "PL"
	StatusFullyDelivered     OrderStatus = "FD"
)

// AllOrderStatuses lists every valid status value.
var AllOrderStatuses = []OrderStatus{
	StatusDraft,
	StatusSubmitted,
	StatusInReview,
	StatusRevised,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
	StatusClosed,
	StatusPartiallyDelivered,
	StatusFullyDelivered,
}

// ParseOrderStatus converts a stored/submitted value into an OrderStatus.
// Unknown values are rejected so freeform strings never reach the database.
func ParseOrderStatus(value string) (OrderStatus, error) {
	candidate := OrderStatus(value)
	for _, s := range AllOrderStatuses {
		if candidate == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", value)
}

// IsValid reports whether the status is one of the enumerated values.
func (s OrderStatus) IsValid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

// AllowedNext returns the statuses this status may transition to.
// No transition matrix is specified for the workflow yet, so every
// enumerated value is currently reachable from every other.
func (s OrderStatus) AllowedNext() []OrderStatus {
	next := make([]OrderStatus, len(AllOrderStatuses))
	copy(next, AllOrderStatuses)
	return next
}

// StatusCount is one aggregation row of CountByStatus: a status value and the
// number of purchase orders currently holding it. Statuses with no orders do
// not produce a row.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}
