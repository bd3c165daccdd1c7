package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/delivery"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
	"github.com/Lugdu84/ebay-clone-nft/domain/listing"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
	"github.com/Lugdu84/ebay-clone-nft/middleware"
)

type listingHandler struct {
	listing listing.UseCase
	chainId domain.ChainId
}

func New(e *echo.Echo, listingUseCase listing.UseCase, chainId domain.ChainId) {
	handler := &listingHandler{
		listing: listingUseCase,
		chainId: chainId,
	}

	e.GET("/listings", handler.index, middleware.CacheHttp(30*time.Second))
	e.GET("/listings/:id", handler.detail)
	e.POST("/listings/:id/buy", handler.buy, middleware.RequireWallet())
	e.POST("/listings/:id/bid", handler.bid, middleware.RequireWallet())
	e.POST("/listings/:id/offers/:offeror/accept", handler.acceptOffer,
		middleware.RequireWallet(), middleware.IsValidAddress("offeror"))

	e.GET("/assets/owned", handler.ownedAssets, middleware.RequireWallet())

	g := e.Group("/listing-drafts", middleware.RequireWallet())
	g.POST("", handler.createDraft)
	g.GET("/:id", handler.getDraft)
	g.PUT("/:id/asset", handler.selectAsset)
	g.PUT("/:id", handler.updateDraft)
	g.POST("/:id/submit", handler.submitDraft)
}

func (h *listingHandler) index(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	entries, err := h.listing.ActiveListings(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, entries)
}

func (h *listingHandler) detail(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	view, err := h.listing.GetDetail(ctx, domain.ListingId(c.Param("id")), session.Address)
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *listingHandler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	if err := h.listing.BuyNow(ctx, session, domain.ListingId(c.Param("id"))); err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Redirect string `json:"redirect"`
	}{"/"})
}

func (h *listingHandler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	type params struct {
		Amount string `json:"amount"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	res, err := h.listing.PlaceBidOrOffer(ctx, session, domain.ListingId(c.Param("id")), p.Amount)
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *listingHandler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	err := h.listing.AcceptOffer(ctx, session,
		domain.ListingId(c.Param("id")), domain.Address(c.Param("offeror")).ToLower())
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, struct {
		Redirect string `json:"redirect"`
	}{"/"})
}

func (h *listingHandler) ownedAssets(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	assets, err := h.listing.OwnedAssets(ctx, session.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, assets)
}

func (h *listingHandler) createDraft(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	draft, err := h.listing.CreateDraft(ctx, session.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, draft)
}

func (h *listingHandler) getDraft(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	draft, err := h.listing.GetDraft(ctx, c.Param("id"), session.Address)
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, draft)
}

func (h *listingHandler) selectAsset(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	type params struct {
		Contract domain.Address `json:"contract"`
		TokenId  domain.TokenId `json:"tokenId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	draft, err := h.listing.SelectAsset(ctx, c.Param("id"), session.Address, asset.Id{
		Contract: p.Contract.ToLower(),
		TokenId:  p.TokenId,
	})
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, draft)
}

func (h *listingHandler) updateDraft(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	p := &listing.DraftPatch{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	draft, err := h.listing.UpdateDraft(ctx, c.Param("id"), session.Address, *p)
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, draft)
}

func (h *listingHandler) submitDraft(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	res, err := h.listing.SubmitDraft(ctx, session, c.Param("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// mapError translates flow errors to their http shape. A network
// mismatch returns the switch-network instruction instead of a plain
// message; the client switches and the user retries.
func (h *listingHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNetworkMismatch):
		return delivery.MakeJsonResp(c, http.StatusConflict, wallet.NewSwitchRequest(h.chainId))
	case errors.Is(err, domain.ErrBusy):
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case errors.Is(err, domain.ErrNotSeller):
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidListingKind),
		errors.Is(err, domain.ErrInvalidDraftState),
		errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrBadParamInput):
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
