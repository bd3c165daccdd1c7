package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	activityMocks "github.com/Lugdu84/ebay-clone-nft/domain/activity/mocks"
	marketMocks "github.com/Lugdu84/ebay-clone-nft/domain/market/mocks"
	"github.com/Lugdu84/ebay-clone-nft/domain/mint"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
	lockMocks "github.com/Lugdu84/ebay-clone-nft/service/lock/mocks"
	notifierMocks "github.com/Lugdu84/ebay-clone-nft/service/notifier/mocks"
	pinataMocks "github.com/Lugdu84/ebay-clone-nft/service/pinata/mocks"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type mintUseCaseSuite struct {
	suite.Suite

	ctx        bCtx.Ctx
	collection *marketMocks.Collection
	pinata     *pinataMocks.Service
	notifier   *notifierMocks.Service
	activity   *activityMocks.UseCase
	lock       *lockMocks.Service

	session wallet.Session
	pending *mint.PendingMint

	uc mint.UseCase
}

func TestMintUseCaseSuite(t *testing.T) {
	suite.Run(t, new(mintUseCaseSuite))
}

func (s *mintUseCaseSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.collection = &marketMocks.Collection{}
	s.pinata = &pinataMocks.Service{}
	s.notifier = &notifierMocks.Service{}
	s.activity = &activityMocks.UseCase{}
	s.lock = &lockMocks.Service{}

	s.session = wallet.Session{
		Address: domain.Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d"),
		ChainId: domain.ChainId(5),
	}
	s.pending = &mint.PendingMint{
		Name:          "my nft",
		Description:   "a nft",
		Image:         pngHeader,
		ImageFilename: "my.png",
	}

	s.uc = NewMintUseCase(&MintUseCaseCfg{
		Collection: s.collection,
		Pinata:     s.pinata,
		Notifier:   s.notifier,
		Activity:   s.activity,
		Lock:       s.lock,
	})
}

func (s *mintUseCaseSuite) expectLock() {
	s.lock.On("Acquire", mock.Anything, s.session.Address).Return(func() {}, nil)
}

func (s *mintUseCaseSuite) TestAnonymousSessionSkips() {
	res, err := s.uc.Mint(s.ctx, wallet.Session{}, s.pending)
	s.NoError(err)
	s.Nil(res)
	s.pinata.AssertNotCalled(s.T(), "Pin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *mintUseCaseSuite) TestMissingFieldsReportedTogether() {
	_, err := s.uc.Mint(s.ctx, s.session, &mint.PendingMint{})

	var verr *mint.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.True(verr.Flags.Name)
	s.True(verr.Flags.Description)
	s.True(verr.Flags.Image)

	_, err = s.uc.Mint(s.ctx, s.session, &mint.PendingMint{Name: "only name"})
	s.Require().ErrorAs(err, &verr)
	s.False(verr.Flags.Name)
	s.True(verr.Flags.Description)
	s.True(verr.Flags.Image)
}

func (s *mintUseCaseSuite) TestMint() {
	s.expectLock()
	// the sniffed extension is passed without its leading dot
	s.pinata.On("Pin", mock.Anything, mock.Anything, "png", mock.Anything).
		Return("ipfs://image", nil)
	s.pinata.On("PinJson", mock.Anything, mock.Anything, mock.Anything).
		Return("ipfs://metadata", nil)
	s.collection.On("MintTo", mock.Anything, s.session.Address, "ipfs://metadata").
		Return(domain.TokenId("12"), nil)
	s.notifier.On("Notify", mock.Anything, mock.Anything, "NFT minted successfully")
	s.activity.On("Record", mock.Anything, mock.Anything)

	res, err := s.uc.Mint(s.ctx, s.session, s.pending)
	s.Require().NoError(err)
	s.Equal(domain.TokenId("12"), res.TokenId)
	s.Equal("/", res.Redirect)
}

func (s *mintUseCaseSuite) TestPinFailureStopsMint() {
	s.expectLock()
	s.pinata.On("Pin", mock.Anything, mock.Anything, "png", mock.Anything).
		Return("", errors.New("pinata down"))
	s.notifier.On("Notify", mock.Anything, mock.Anything, "Error minting NFT")

	_, err := s.uc.Mint(s.ctx, s.session, s.pending)
	s.Error(err)
	s.collection.AssertNotCalled(s.T(), "MintTo", mock.Anything, mock.Anything, mock.Anything)
}

func (s *mintUseCaseSuite) TestBusyWallet() {
	s.lock.On("Acquire", mock.Anything, s.session.Address).Return(nil, domain.ErrBusy)

	_, err := s.uc.Mint(s.ctx, s.session, s.pending)
	s.ErrorIs(err, domain.ErrBusy)
	s.pinata.AssertNotCalled(s.T(), "Pin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *mintUseCaseSuite) TestUnresolvedCollection() {
	uc := NewMintUseCase(&MintUseCaseCfg{
		Pinata:   s.pinata,
		Notifier: s.notifier,
		Activity: s.activity,
		Lock:     s.lock,
	})
	res, err := uc.Mint(s.ctx, s.session, s.pending)
	s.NoError(err)
	s.Nil(res)
}
