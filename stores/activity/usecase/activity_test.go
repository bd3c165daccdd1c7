package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity/mocks"
)

func TestRecordNormalizes(t *testing.T) {
	c := bCtx.Background()
	repo := &mocks.Repo{}
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Address == domain.Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d") &&
			!a.CreatedAt.IsZero()
	})).Return(nil)

	NewActivityUseCase(repo).Record(c, &activity.Activity{
		Type:    activity.TypeBuy,
		Address: domain.Address("0x939AE0CC1C3A1B7A44834A6FBDE54AA713952A1D"),
	})
	repo.AssertExpectations(t)
}

func TestRecordSwallowsInsertFailure(t *testing.T) {
	c := bCtx.Background()
	repo := &mocks.Repo{}
	repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	// must not panic or surface the error
	NewActivityUseCase(repo).Record(c, &activity.Activity{
		Type:    activity.TypeMint,
		Address: domain.Address("0xabc"),
	})
	repo.AssertExpectations(t)
}

func TestList(t *testing.T) {
	c := bCtx.Background()
	repo := &mocks.Repo{}
	expected := []*activity.Activity{{Type: activity.TypeBid}}
	repo.On("FindAll", mock.Anything, mock.Anything).Return(expected, nil)

	got, err := NewActivityUseCase(repo).List(c, activity.WithType(activity.TypeBid))
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
