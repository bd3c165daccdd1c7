package lock

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	redisMocks "github.com/Lugdu84/ebay-clone-nft/service/redis/mocks"
)

func TestAcquireAndRelease(t *testing.T) {
	c := bCtx.Background()
	red := &redisMocks.Service{}
	owner := domain.Address("0x939AE0CC1C3A1B7A44834A6FBDE54AA713952A1D")

	// keys are normalized to the lowercase wallet address
	key := "busy:0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d"
	red.On("SetNX", mock.Anything, key, mock.Anything, 2*time.Minute).Return(true, nil)
	red.On("Del", mock.Anything, key).Return(true, nil)

	release, err := New(red, 2*time.Minute).Acquire(c, owner)
	require.NoError(t, err)
	require.NotNil(t, release)

	release()
	red.AssertCalled(t, "Del", mock.Anything, key)
}

func TestAcquireHeldLock(t *testing.T) {
	c := bCtx.Background()
	red := &redisMocks.Service{}
	red.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	_, err := New(red, time.Minute).Acquire(c, domain.Address("0xabc"))
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestAcquireRedisFailure(t *testing.T) {
	c := bCtx.Background()
	red := &redisMocks.Service{}
	red.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("connection refused"))

	_, err := New(red, time.Minute).Acquire(c, domain.Address("0xabc"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBusy)
}
