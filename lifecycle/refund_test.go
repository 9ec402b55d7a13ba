package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func TestNextRefundStatuses(t *testing.T) {
	assert.ElementsMatch(t, []RefundStatus{RefundApproved, RefundRejected}, NextRefundStatuses(RefundPending))
	assert.ElementsMatch(t, []RefundStatus{RefundCollected}, NextRefundStatuses(RefundApproved))
	assert.ElementsMatch(t, []RefundStatus{RefundCompleted}, NextRefundStatuses(RefundCollected))
	assert.Empty(t, NextRefundStatuses(RefundCompleted))
	assert.Empty(t, NextRefundStatuses(RefundRejected))
	assert.Empty(t, NextRefundStatuses(RefundStatus("bogus")))
}

func TestRefundHappyBranch(t *testing.T) {
	refund := &models.Refund{ID: 3, Status: string(RefundPending)}

	for _, target := range []RefundStatus{RefundApproved, RefundCollected, RefundCompleted} {
		entry, err := TransitionRefund(refund, target, "", time.Now())
		require.NoError(t, err)
		assert.Equal(t, string(target), refund.Status)
		assert.Equal(t, uint(3), entry.RefundID)
	}
}

func TestRefundRejectBranchIsTerminal(t *testing.T) {
	refund := &models.Refund{ID: 9, Status: string(RefundPending)}

	_, err := TransitionRefund(refund, RefundRejected, "damaged claim unverified", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "damaged claim unverified", refund.AdminComment)

	for _, target := range []RefundStatus{RefundPending, RefundApproved, RefundCollected, RefundCompleted, RefundRejected} {
		_, err := TransitionRefund(refund, target, "", time.Now())
		assert.Error(t, err, "REJECTED -> %s must be refused", target)
		assert.Equal(t, string(RefundRejected), refund.Status)
	}
}

func TestRefundCompletedIsTerminal(t *testing.T) {
	refund := &models.Refund{ID: 4, Status: string(RefundCompleted)}
	_, err := TransitionRefund(refund, RefundApproved, "", time.Now())
	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
}

func TestRefundCannotSkipCollection(t *testing.T) {
	refund := &models.Refund{ID: 5, Status: string(RefundApproved)}
	_, err := TransitionRefund(refund, RefundCompleted, "", time.Now())
	assert.Error(t, err)
	assert.Equal(t, string(RefundApproved), refund.Status)
}

func TestTransitionRefundKeepsCommentOnEmpty(t *testing.T) {
	refund := &models.Refund{ID: 6, Status: string(RefundPending), AdminComment: "first pass"}
	_, err := TransitionRefund(refund, RefundApproved, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "first pass", refund.AdminComment)
}

func TestParseRefundStatus(t *testing.T) {
	got, err := ParseRefundStatus("approved")
	require.NoError(t, err)
	assert.Equal(t, RefundApproved, got)

	_, err = ParseRefundStatus("escalated")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
