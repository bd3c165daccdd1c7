package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing/mocks"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
)

func newBidContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	c.Set("ctx", bCtx.Background())
	c.Set("session", wallet.Session{
		Address: domain.Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d"),
		ChainId: domain.ChainId(1),
	})
	return c, rec
}

func TestBuyNetworkMismatch(t *testing.T) {
	uc := &mocks.UseCase{}
	uc.On("BuyNow", mock.Anything, mock.Anything, domain.ListingId("1")).
		Return(domain.ErrNetworkMismatch)
	h := &listingHandler{listing: uc, chainId: domain.ChainId(5)}

	c, rec := newBidContext("")
	require.NoError(t, h.buy(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	// the client is told which chain to switch to
	assert.Contains(t, rec.Body.String(), "switch-network")
	assert.Contains(t, rec.Body.String(), `"chainId":5`)
}

func TestBidNetworkMismatch(t *testing.T) {
	uc := &mocks.UseCase{}
	uc.On("PlaceBidOrOffer", mock.Anything, mock.Anything, domain.ListingId("1"), "1").
		Return(nil, domain.ErrNetworkMismatch)
	h := &listingHandler{listing: uc, chainId: domain.ChainId(5)}

	c, rec := newBidContext(`{"amount":"1"}`)
	require.NoError(t, h.bid(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "switch-network")
}

func TestBidBusyWallet(t *testing.T) {
	uc := &mocks.UseCase{}
	uc.On("PlaceBidOrOffer", mock.Anything, mock.Anything, domain.ListingId("1"), "1").
		Return(nil, domain.ErrBusy)
	h := &listingHandler{listing: uc, chainId: domain.ChainId(5)}

	c, rec := newBidContext(`{"amount":"1"}`)
	require.NoError(t, h.bid(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotContains(t, rec.Body.String(), "switch-network")
}

func TestBidInvalidAmount(t *testing.T) {
	uc := &mocks.UseCase{}
	uc.On("PlaceBidOrOffer", mock.Anything, mock.Anything, domain.ListingId("1"), "abc").
		Return(nil, domain.ErrInvalidAmount)
	h := &listingHandler{listing: uc, chainId: domain.ChainId(5)}

	c, rec := newBidContext(`{"amount":"abc"}`)
	require.NoError(t, h.bid(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptOfferNotSeller(t *testing.T) {
	uc := &mocks.UseCase{}
	uc.On("AcceptOffer", mock.Anything, mock.Anything, domain.ListingId("1"), mock.Anything).
		Return(domain.ErrNotSeller)
	h := &listingHandler{listing: uc, chainId: domain.ChainId(5)}

	c, rec := newBidContext("")
	c.SetParamNames("id", "offeror")
	c.SetParamValues("1", "0xdddd000000000000000000000000000000000004")
	require.NoError(t, h.acceptOffer(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
