package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bCtx "github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, address string, chainId domain.ChainId) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		Address: address,
		ChainId: chainId,
	})
	raw, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func runSession(t *testing.T, authorization string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", bCtx.Background())

	m := &GoMiddleware{}
	handler := m.WalletSession(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestWalletSession(t *testing.T) {
	raw := signedToken(t, "0x939AE0CC1C3A1B7A44834A6FBDE54AA713952A1D", 5)
	rec, c := runSession(t, "Bearer "+raw)

	assert.Equal(t, http.StatusOK, rec.Code)
	session := GetSession(c)
	assert.False(t, session.IsAnonymous())
	assert.Equal(t, domain.Address("0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d"), session.Address)
	assert.Equal(t, domain.ChainId(5), session.ChainId)
}

func TestWalletSessionAnonymous(t *testing.T) {
	rec, c := runSession(t, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, GetSession(c).IsAnonymous())
}

func TestWalletSessionBadToken(t *testing.T) {
	rec, _ := runSession(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWalletSessionWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		Address: "0x939ae0cc1c3a1b7a44834a6fbde54aa713952a1d",
		ChainId: 5,
	})
	raw, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	rec, _ := runSession(t, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWalletSessionBadAddress(t *testing.T) {
	raw := signedToken(t, "not-an-address", 5)
	rec, _ := runSession(t, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireWallet(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", bCtx.Background())

	handler := RequireWallet()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
