package lifecycle

import (
	"strings"
	"time"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type RefundStatus string

const (
	RefundPending   RefundStatus = "PENDING"
	RefundApproved  RefundStatus = "APPROVED"
	RefundCollected RefundStatus = "COLLECTED"
	RefundCompleted RefundStatus = "COMPLETED"
	RefundRejected  RefundStatus = "REJECTED"
)

// Refund statuses follow two branches from PENDING:
// approve → collect → complete, or reject. REJECTED and COMPLETED are
// terminal.
var refundFlow = map[RefundStatus][]RefundStatus{
	RefundPending:   {RefundApproved, RefundRejected},
	RefundApproved:  {RefundCollected},
	RefundCollected: {RefundCompleted},
	RefundCompleted: {},
	RefundRejected:  {},
}

func (s RefundStatus) String() string {
	return string(s)
}

// NextRefundStatuses returns the statuses reachable from s; empty for
// unknown and terminal statuses.
func NextRefundStatuses(s RefundStatus) []RefundStatus {
	next, ok := refundFlow[s]
	if !ok {
		return nil
	}
	return next
}

// CanTransitionRefund reports whether target is reachable from current.
func CanTransitionRefund(current, target RefundStatus) bool {
	for _, s := range NextRefundStatuses(current) {
		if s == target {
			return true
		}
	}
	return false
}

// TransitionRefund moves the refund to target, records the admin comment and
// appends a tracking entry. The refund is left untouched on an invalid
// transition.
func TransitionRefund(refund *models.Refund, target RefundStatus, comment string, now time.Time) (models.RefundTrackingEntry, error) {
	if !CanTransitionRefund(RefundStatus(refund.Status), target) {
		return models.RefundTrackingEntry{}, &InvalidTransitionError{From: refund.Status, To: string(target)}
	}
	refund.Status = string(target)
	if comment != "" {
		refund.AdminComment = comment
	}
	return models.RefundTrackingEntry{
		RefundID:  refund.ID,
		Status:    string(target),
		Timestamp: now,
	}, nil
}

// ParseRefundStatus maps a request string to a known refund status.
func ParseRefundStatus(s string) (RefundStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RefundPending):
		return RefundPending, nil
	case string(RefundApproved):
		return RefundApproved, nil
	case string(RefundCollected):
		return RefundCollected, nil
	case string(RefundCompleted):
		return RefundCompleted, nil
	case string(RefundRejected):
		return RefundRejected, nil
	default:
		return "", ErrUnknownStatus
	}
}
