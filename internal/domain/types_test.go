package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmorrow/issuesheet/internal/domain"
)

func TestRowState_String(t *testing.T) {
	testCases := []struct {
		state    domain.RowState
		expected string
	}{
		{domain.RowPending, "pending"},
		{domain.RowIssueCreated, "issue created"},
		{domain.RowLinked, "linked"},
		{domain.RowFailed, "failed"},
		{domain.RowState(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.state.String())
		})
	}
}

func TestRowResult_Succeeded(t *testing.T) {
	assert.True(t, domain.RowResult{State: domain.RowLinked}.Succeeded())
	assert.False(t, domain.RowResult{State: domain.RowIssueCreated}.Succeeded())
	assert.False(t, domain.RowResult{State: domain.RowFailed}.Succeeded())
}

func TestRowError_IncludesRowNumber(t *testing.T) {
	err := &domain.RowError{Row: 7, Err: errors.New("createIssue: boom")}

	assert.Equal(t, "row 7: createIssue: boom", err.Error())
}

func TestRowError_UnwrapsUnderlyingError(t *testing.T) {
	underlying := errors.New("boom")
	err := &domain.RowError{Row: 2, Err: underlying}

	require.ErrorIs(t, err, underlying)

	var rowErr *domain.RowError
	require.ErrorAs(t, error(err), &rowErr)
	assert.Equal(t, 2, rowErr.Row)
}
