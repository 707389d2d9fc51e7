package winnerservice

import (
	"context"
	"testing"

	"github.com/rifas-ec/rifas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	winnerRepo   *MockWinnerRepo
	activityRepo *MockActivityRepo
	orderRepo    *MockOrderRepo
}

func newService(t *testing.T) (*Service, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mocks{
		winnerRepo:   NewMockWinnerRepo(ctrl),
		activityRepo: NewMockActivityRepo(ctrl),
		orderRepo:    NewMockOrderRepo(ctrl),
	}
	return New(m.winnerRepo, m.activityRepo, m.orderRepo), m
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	activity := &domain.Activity{ID: 1, LuckyNumbers: []string{"00007", "00042"}}
	order := &domain.Order{ID: 3, TicketNumbers: []string{"00007", "00020"}}

	t.Run("Manual lucky winner", func(t *testing.T) {
		svc, m := newService(t)

		m.activityRepo.EXPECT().FindByID(ctx, 1).Return(activity, nil)
		m.orderRepo.EXPECT().FindByID(ctx, 3).Return(order, nil)
		m.winnerRepo.EXPECT().FindByActivityAndNumber(ctx, 1, "00007").Return(nil, nil)
		m.winnerRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		winner, err := svc.Create(ctx, &domain.Winner{
			ActivityID:    1,
			OrderID:       3,
			WinningNumber: "00007",
			IsLuckyNumber: true,
		})
		require.NoError(t, err)
		assert.False(t, winner.DrawDate.IsZero())
		assert.False(t, winner.Announced)
	})

	t.Run("Manual main winner", func(t *testing.T) {
		svc, m := newService(t)

		m.activityRepo.EXPECT().FindByID(ctx, 1).Return(activity, nil)
		m.orderRepo.EXPECT().FindByID(ctx, 3).Return(order, nil)
		m.winnerRepo.EXPECT().FindMainWinner(ctx, 1).Return(nil, nil)
		m.winnerRepo.EXPECT().FindByActivityAndNumber(ctx, 1, "00020").Return(nil, nil)
		m.winnerRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		winner, err := svc.Create(ctx, &domain.Winner{
			ActivityID:    1,
			OrderID:       3,
			WinningNumber: "00020",
		})
		require.NoError(t, err)
		assert.False(t, winner.IsLuckyNumber)
	})

	t.Run("Second main winner refused", func(t *testing.T) {
		svc, m := newService(t)

		m.activityRepo.EXPECT().FindByID(ctx, 1).Return(activity, nil)
		m.orderRepo.EXPECT().FindByID(ctx, 3).Return(order, nil)
		m.winnerRepo.EXPECT().FindMainWinner(ctx, 1).Return(&domain.Winner{ID: 9}, nil)

		_, err := svc.Create(ctx, &domain.Winner{
			ActivityID:    1,
			OrderID:       3,
			WinningNumber: "00020",
		})
		assert.ErrorIs(t, err, ErrMainWinnerExists)
	})

	t.Run("Refusals", func(t *testing.T) {
		tests := []struct {
			name     string
			winner   *domain.Winner
			activity *domain.Activity
			order    *domain.Order
			existing *domain.Winner
			wantErr  error
		}{
			{
				name:    "Unknown activity",
				winner:  &domain.Winner{ActivityID: 1, OrderID: 3, WinningNumber: "00007"},
				wantErr: ErrActivityNotFound,
			},
			{
				name:     "Unknown order",
				winner:   &domain.Winner{ActivityID: 1, OrderID: 3, WinningNumber: "00007"},
				activity: activity,
				wantErr:  ErrOrderNotFound,
			},
			{
				name:     "Number outside the lucky set",
				winner:   &domain.Winner{ActivityID: 1, OrderID: 3, WinningNumber: "00020", IsLuckyNumber: true},
				activity: activity,
				order:    order,
				wantErr:  ErrLuckyNumberUnknown,
			},
			{
				name:     "Number not held by the order",
				winner:   &domain.Winner{ActivityID: 1, OrderID: 3, WinningNumber: "00042", IsLuckyNumber: true},
				activity: activity,
				order:    order,
				wantErr:  ErrNumberNotInOrder,
			},
			{
				name:     "Number already won",
				winner:   &domain.Winner{ActivityID: 1, OrderID: 3, WinningNumber: "00007", IsLuckyNumber: true},
				activity: activity,
				order:    order,
				existing: &domain.Winner{ID: 9},
				wantErr:  ErrNumberAlreadyWon,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, m := newService(t)

				m.activityRepo.EXPECT().FindByID(ctx, 1).Return(tt.activity, nil)
				if tt.activity != nil {
					m.orderRepo.EXPECT().FindByID(ctx, 3).Return(tt.order, nil)
				}
				if tt.wantErr == ErrNumberAlreadyWon {
					m.winnerRepo.EXPECT().FindByActivityAndNumber(ctx, 1, "00007").Return(tt.existing, nil)
				}

				_, err := svc.Create(ctx, tt.winner)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestPublicWinners(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.winnerRepo.EXPECT().FindAnnounced(ctx).Return([]domain.Winner{{ID: 9, Announced: true}}, nil)

	winners, err := svc.PublicWinners(ctx)
	require.NoError(t, err)
	assert.Len(t, winners, 1)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, m := newService(t)
		m.winnerRepo.EXPECT().FindByID(ctx, 9).Return(&domain.Winner{ID: 9}, nil)

		winner, err := svc.GetByID(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, 9, winner.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		svc, m := newService(t)
		m.winnerRepo.EXPECT().FindByID(ctx, 404).Return(nil, nil)

		_, err := svc.GetByID(ctx, 404)
		assert.ErrorIs(t, err, ErrWinnerNotFound)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	notes := "entregado en persona"
	announced := true
	m.winnerRepo.EXPECT().FindByID(ctx, 9).Return(&domain.Winner{ID: 9}, nil)
	m.winnerRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	winner, err := svc.Update(ctx, 9, UpdateParams{Notes: &notes, Announced: &announced})
	require.NoError(t, err)
	assert.Equal(t, notes, winner.Notes)
	assert.True(t, winner.Announced)
}

func TestToggleAnnounced(t *testing.T) {
	ctx := context.Background()
	svc, m := newService(t)

	m.winnerRepo.EXPECT().FindByID(ctx, 9).Return(&domain.Winner{ID: 9, Announced: true}, nil)
	m.winnerRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	winner, err := svc.ToggleAnnounced(ctx, 9)
	require.NoError(t, err)
	assert.False(t, winner.Announced)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing winner", func(t *testing.T) {
		svc, m := newService(t)
		m.winnerRepo.EXPECT().FindByID(ctx, 9).Return(&domain.Winner{ID: 9}, nil)
		m.winnerRepo.EXPECT().Delete(ctx, 9).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 9))
	})

	t.Run("Missing winner", func(t *testing.T) {
		svc, m := newService(t)
		m.winnerRepo.EXPECT().FindByID(ctx, 404).Return(nil, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 404), ErrWinnerNotFound)
	})
}
