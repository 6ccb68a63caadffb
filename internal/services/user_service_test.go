package services

import (
	"context"
	"testing"

	"shopmart/internal/common"
	"shopmart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChargeBalance_RejectsNonPositiveAmount(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	for _, amount := range []float64{-100, 0} {
		user, err := svc.ChargeBalance(context.Background(), 1, amount)

		assert.Nil(t, user)
		var invalid *common.InvalidArgumentError
		assert.ErrorAs(t, err, &invalid)
		assert.Equal(t, "amount", invalid.Field)
	}
	store.users.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestChargeBalance_CreditsUser(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	store.users.On("AdjustBalance", mock.Anything, int64(1), 250.0).
		Return(&models.User{ID: 1, Balance: 350}, nil)

	user, err := svc.ChargeBalance(context.Background(), 1, 250)

	assert.NoError(t, err)
	assert.Equal(t, 350.0, user.Balance)
	store.users.AssertExpectations(t)
}

func TestChargeBalance_UserNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	store.users.On("AdjustBalance", mock.Anything, int64(42), 10.0).
		Return(nil, &common.NotFoundError{Resource: "User", ID: 42})

	user, err := svc.ChargeBalance(context.Background(), 42, 10)

	assert.Nil(t, user)
	var notFound *common.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCheckBalance(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	store.users.On("GetByID", mock.Anything, int64(1)).
		Return(&models.User{ID: 1, Balance: 100}, nil)

	ok, err := svc.CheckBalance(context.Background(), 1, 100)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckBalance(context.Background(), 1, 100.01)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckBalance_UserNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	store.users.On("GetByID", mock.Anything, int64(42)).
		Return(nil, &common.NotFoundError{Resource: "User", ID: 42})

	ok, err := svc.CheckBalance(context.Background(), 42, 10)

	assert.False(t, ok)
	var notFound *common.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
