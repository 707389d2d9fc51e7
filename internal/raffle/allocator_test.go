package raffle

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/rifas-ec/rifas/pkg/numberpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewAllocatorMock(t *testing.T) (*Allocator, *MockOrderRepo) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderRepo(ctrl)
	allocator := NewAllocator(orders, numberpool.New(rand.New(rand.NewSource(1))))
	defer ctrl.Finish()
	return allocator, orders
}

func TestAllocate(t *testing.T) {
	activity := &domain.Activity{ID: 1, TotalTickets: 10}

	tests := []struct {
		name            string
		order           *domain.Order
		prepareMock     func(orders *MockOrderRepo)
		expectedNumbers []string
		expectedError   error
	}{
		{
			name:  "Order with numbers is returned unchanged",
			order: &domain.Order{ID: 5, ActivityID: 1, Quantity: 2, Status: domain.PaidOrderStatus, TicketNumbers: []string{"00001", "00002"}},
			prepareMock: func(orders *MockOrderRepo) {
			},
			expectedNumbers: []string{"00001", "00002"},
		},
		{
			name:  "Allocates exactly the remaining numbers",
			order: &domain.Order{ID: 6, ActivityID: 1, Quantity: 3, Status: domain.PaidOrderStatus},
			prepareMock: func(orders *MockOrderRepo) {
				orders.EXPECT().FindPaidWithNumbers(gomock.Any(), 1).Return([]domain.Order{
					{ID: 2, TicketNumbers: []string{"00001", "00003", "00005", "00007"}},
					{ID: 3, TicketNumbers: []string{"00002", "00004", "00008"}},
				}, nil)
				orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedNumbers: []string{"00006", "00009", "00010"},
		},
		{
			name:  "Capacity exceeded surfaces without partial allocation",
			order: &domain.Order{ID: 7, ActivityID: 1, Quantity: 5, Status: domain.PaidOrderStatus},
			prepareMock: func(orders *MockOrderRepo) {
				orders.EXPECT().FindPaidWithNumbers(gomock.Any(), 1).Return([]domain.Order{
					{ID: 2, TicketNumbers: []string{"00001", "00002", "00003", "00004", "00005", "00006", "00007"}},
				}, nil)
			},
			expectedError: numberpool.ErrCapacityExceeded,
		},
		{
			name:  "Repo error fetching assigned numbers",
			order: &domain.Order{ID: 8, ActivityID: 1, Quantity: 1, Status: domain.PaidOrderStatus},
			prepareMock: func(orders *MockOrderRepo) {
				orders.EXPECT().FindPaidWithNumbers(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Update error propagates",
			order: &domain.Order{ID: 9, ActivityID: 1, Quantity: 1, Status: domain.PaidOrderStatus},
			prepareMock: func(orders *MockOrderRepo) {
				orders.EXPECT().FindPaidWithNumbers(gomock.Any(), 1).Return(nil, nil)
				orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocator, orders := NewAllocatorMock(t)
			tt.prepareMock(orders)

			numbers, err := allocator.Allocate(context.Background(), activity, tt.order)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, numbers)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedNumbers, numbers)
			assert.Equal(t, tt.expectedNumbers, tt.order.TicketNumbers)
			assert.True(t, sort.StringsAreSorted(numbers))
		})
	}
}

func TestAllocateQuantityMatchesResult(t *testing.T) {
	allocator, orders := NewAllocatorMock(t)
	activity := &domain.Activity{ID: 1, TotalTickets: 100}
	order := &domain.Order{ID: 1, ActivityID: 1, Quantity: 7, Status: domain.PaidOrderStatus}

	orders.EXPECT().FindPaidWithNumbers(gomock.Any(), 1).Return(nil, nil)
	orders.EXPECT().Update(gomock.Any(), order).Return(nil)

	numbers, err := allocator.Allocate(context.Background(), activity, order)
	require.NoError(t, err)
	assert.Len(t, numbers, order.Quantity)
}
