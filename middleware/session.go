package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/delivery"
	"github.com/Lugdu84/ebay-clone-nft/base/validator"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/wallet"
)

const sessionKey = "session"

type sessionClaims struct {
	Address string         `json:"address"`
	ChainId domain.ChainId `json:"chainId"`
	jwt.StandardClaims
}

// WalletSession decodes the bearer token into a wallet session. Requests
// without a token pass through anonymous; handlers that mutate state
// reject those themselves.
func (m *GoMiddleware) WalletSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(sessionKey, wallet.Session{})
				return next(c)
			}
			raw := strings.TrimPrefix(header, "Bearer ")
			claims := &sessionClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil {
				appCtx := c.Get("ctx").(ctx.Ctx)
				appCtx.WithField("err", err).Warn("invalid session token")
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, "invalid session token")
			}
			if !validator.IsValidAddress(claims.Address) {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, "invalid session address")
			}
			c.Set(sessionKey, wallet.Session{
				Address: domain.Address(claims.Address).ToLower(),
				ChainId: claims.ChainId,
			})
			return next(c)
		}
	}
}

// GetSession returns the wallet session put there by WalletSession.
func GetSession(c echo.Context) wallet.Session {
	if s, ok := c.Get(sessionKey).(wallet.Session); ok {
		return s
	}
	return wallet.Session{}
}

// RequireWallet rejects anonymous requests.
func RequireWallet() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if GetSession(c).IsAnonymous() {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, "wallet not connected")
			}
			return next(c)
		}
	}
}
