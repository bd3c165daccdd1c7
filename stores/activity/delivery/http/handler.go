package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/delivery"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/activity"
	"github.com/Lugdu84/ebay-clone-nft/middleware"
)

type activityHandler struct {
	activity activity.UseCase
}

func New(e *echo.Echo, activityUseCase activity.UseCase) {
	handler := &activityHandler{
		activity: activityUseCase,
	}
	e.GET("/activities", handler.list, middleware.CacheHttp(10*time.Second))
}

func (h *activityHandler) list(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Address domain.Address `query:"address"`
		Type    activity.Type  `query:"type"`
		Offset  int32          `query:"offset"`
		Limit   int32          `query:"limit"`
	}
	p := &params{Limit: 50}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	opts := []activity.FindAllOptionsFunc{
		activity.WithPagination(p.Offset, p.Limit),
	}
	if !p.Address.IsEmpty() {
		opts = append(opts, activity.WithAddress(p.Address))
	}
	if p.Type != "" {
		opts = append(opts, activity.WithType(p.Type))
	}

	res, err := h.activity.List(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
