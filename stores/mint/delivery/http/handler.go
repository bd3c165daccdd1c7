package http

import (
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/delivery"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/mint"
	"github.com/Lugdu84/ebay-clone-nft/middleware"
)

type mintHandler struct {
	mint mint.UseCase
}

func New(e *echo.Echo, mintUseCase mint.UseCase) {
	handler := &mintHandler{
		mint: mintUseCase,
	}
	e.POST("/mint", handler.handleMint)
}

func (h *mintHandler) handleMint(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	session := middleware.GetSession(c)

	p := &mint.PendingMint{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			ctx.WithField("err", err).Error("failed to open uploaded image")
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		defer src.Close()
		data, err := ioutil.ReadAll(src)
		if err != nil {
			ctx.WithField("err", err).Error("failed to read uploaded image")
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		p.Image = data
		p.ImageFilename = file.Filename
	}

	res, err := h.mint.Mint(ctx, session, p)
	if err != nil {
		var verr *mint.ValidationError
		if errors.As(err, &verr) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, struct {
				Missing mint.RequiredFlags `json:"missing"`
			}{verr.Flags})
		}
		if errors.Is(err, domain.ErrBusy) {
			return delivery.MakeJsonResp(c, http.StatusConflict, err)
		}
		ctx.WithField("err", err).Error("mint.Mint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if res == nil {
		// precondition not met, nothing was attempted
		return delivery.MakeJsonResp(c, http.StatusOK, nil)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
