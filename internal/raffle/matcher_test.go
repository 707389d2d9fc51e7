package raffle

import (
	"context"
	"errors"
	"testing"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMatcherMock(t *testing.T) (*Matcher, *MockWinnerRepo) {
	ctrl := gomock.NewController(t)
	winners := NewMockWinnerRepo(ctrl)
	matcher := NewMatcher(winners)
	defer ctrl.Finish()
	return matcher, winners
}

func TestCheckAndRecord(t *testing.T) {
	activity := &domain.Activity{ID: 1, TotalTickets: 10, LuckyNumbers: []string{"00003", "00007"}}

	tests := []struct {
		name            string
		order           *domain.Order
		prepareMock     func(winners *MockWinnerRepo)
		expectedMatched []string
		expectedError   error
	}{
		{
			name:        "Unpaid order is skipped",
			order:       &domain.Order{ID: 1, Status: domain.PendingOrderStatus, TicketNumbers: []string{"00003"}},
			prepareMock: func(winners *MockWinnerRepo) {},
		},
		{
			name:        "Order without numbers is skipped",
			order:       &domain.Order{ID: 1, Status: domain.PaidOrderStatus},
			prepareMock: func(winners *MockWinnerRepo) {},
		},
		{
			name:        "No lucky hit",
			order:       &domain.Order{ID: 1, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00001", "00002"}},
			prepareMock: func(winners *MockWinnerRepo) {},
		},
		{
			name:  "Records winner for each new match",
			order: &domain.Order{ID: 2, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00003", "00005", "00007"}},
			prepareMock: func(winners *MockWinnerRepo) {
				winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00003").Return(nil, nil)
				winners.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Winner) error {
					assert.Equal(t, 1, w.ActivityID)
					assert.Equal(t, 2, w.OrderID)
					assert.Equal(t, "00003", w.WinningNumber)
					assert.True(t, w.IsLuckyNumber)
					assert.False(t, w.Announced)
					return nil
				})
				winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00007").Return(nil, nil)
				winners.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedMatched: []string{"00003", "00007"},
		},
		{
			name:  "Already awarded number is not duplicated",
			order: &domain.Order{ID: 3, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00003", "00007"}},
			prepareMock: func(winners *MockWinnerRepo) {
				winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00003").
					Return(&domain.Winner{ID: 10, WinningNumber: "00003"}, nil)
				winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00007").Return(nil, nil)
				winners.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedMatched: []string{"00007"},
		},
		{
			name:  "Lookup error propagates",
			order: &domain.Order{ID: 4, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00003"}},
			prepareMock: func(winners *MockWinnerRepo) {
				winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00003").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Save error propagates",
			order: &domain.Order{ID: 5, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00003"}},
			prepareMock: func(winners *MockWinnerRepo) {
				winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00003").Return(nil, nil)
				winners.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matcher, winners := NewMatcherMock(t)
			tt.prepareMock(winners)

			matched, err := matcher.CheckAndRecord(context.Background(), activity, tt.order)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedMatched, matched)
		})
	}
}

func TestCheckAndRecordRerunIsIdempotent(t *testing.T) {
	matcher, winners := NewMatcherMock(t)
	activity := &domain.Activity{ID: 1, TotalTickets: 10, LuckyNumbers: []string{"00003"}}
	order := &domain.Order{ID: 2, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00003"}}

	winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00003").Return(nil, nil)
	winners.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	matched, err := matcher.CheckAndRecord(context.Background(), activity, order)
	require.NoError(t, err)
	assert.Equal(t, []string{"00003"}, matched)

	winners.EXPECT().FindByActivityAndNumber(gomock.Any(), 1, "00003").
		Return(&domain.Winner{ID: 1, WinningNumber: "00003"}, nil)

	matched, err = matcher.CheckAndRecord(context.Background(), activity, order)
	require.NoError(t, err)
	assert.Empty(t, matched)
}
