package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"fleetforge-server/models"
	"fleetforge-server/store"
)

// twoPartCatalog matches the pricing scenario used across the cart
// tests: part a at $100, part b at $50.
func twoPartCatalog() *store.Catalog {
	return store.NewCatalog([]models.Product{
		{ID: "part-a", Name: "Part A", Price: 100, CheckoutLink: "https://buy.example/a"},
		{ID: "part-b", Name: "Part B", Price: 50, CheckoutLink: "https://buy.example/b"},
	})
}

func TestGetCartStartsEmpty(t *testing.T) {
	cl := newClient(t, setupRouter(t, store.DefaultCatalog(), noopRelay()))

	w, resp := cl.do(http.MethodGet, "/api/v1/cart/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(0), resp["total_items"])
	require.Equal(t, float64(0), resp["subtotal"])
	require.Empty(t, resp["items"])
}

func TestAddToCartAccumulates(t *testing.T) {
	cl := newClient(t, setupRouter(t, store.DefaultCatalog(), noopRelay()))

	body := `{"product_id":"bumper-isuzu-gmc"}`
	w, _ := cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(body))
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(body))
	require.Equal(t, http.StatusOK, w.Code)

	items := resp["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(2), resp["total_items"])
	require.InDelta(t, 1320, resp["subtotal"].(float64), 0.001)
}

func TestAddToCartScenarioTotals(t *testing.T) {
	cl := newClient(t, setupRouter(t, twoPartCatalog(), noopRelay()))

	cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"part-a"}`))
	w, resp := cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"part-b","quantity":2}`))
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, float64(3), resp["total_items"])
	require.InDelta(t, 200, resp["subtotal"].(float64), 0.001)
	require.InDelta(t, 6, resp["processing_fee"].(float64), 0.001)
	require.InDelta(t, 206, resp["total"].(float64), 0.001)
	require.Equal(t, "$206.00", resp["total_display"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	cl := newClient(t, setupRouter(t, store.DefaultCatalog(), noopRelay()))

	w, resp := cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"no-such-part"}`))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Product not found", resp["error"])
}

func TestUpdateCartItemToZeroRemoves(t *testing.T) {
	cl := newClient(t, setupRouter(t, twoPartCatalog(), noopRelay()))

	cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"part-a"}`))
	w, resp := cl.do(http.MethodPut, "/api/v1/cart/update", "application/json", strings.NewReader(`{"product_id":"part-a","quantity":0}`))

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["items"])
	require.Equal(t, float64(0), resp["total_items"])
}

func TestRemoveFromCartMissingProduct(t *testing.T) {
	cl := newClient(t, setupRouter(t, store.DefaultCatalog(), noopRelay()))

	w, resp := cl.do(http.MethodDelete, "/api/v1/cart/remove/no-such-part", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["items"])
}

func TestClearCart(t *testing.T) {
	cl := newClient(t, setupRouter(t, twoPartCatalog(), noopRelay()))

	cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"part-a"}`))
	cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"part-b"}`))

	w, resp := cl.do(http.MethodDelete, "/api/v1/cart/clear", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["items"])
	require.Equal(t, float64(0), resp["total_items"])
	require.InDelta(t, 0, resp["total"].(float64), 0.001)
}

func TestSessionCookieIssuedOnce(t *testing.T) {
	router := setupRouter(t, store.DefaultCatalog(), noopRelay())
	cl := newClient(t, router)

	cl.do(http.MethodGet, "/api/v1/cart/", "", nil)
	require.Len(t, cl.cookies, 1)
	require.Equal(t, "ff_cart_session", cl.cookies[0].Name)
	first := cl.cookies[0].Value

	// cart survives across requests within the same session
	cl.do(http.MethodPost, "/api/v1/cart/add", "application/json", strings.NewReader(`{"product_id":"bumper-isuzu-gmc"}`))
	_, resp := cl.do(http.MethodGet, "/api/v1/cart/", "", nil)
	require.Equal(t, float64(1), resp["total_items"])
	require.Equal(t, first, cl.cookies[0].Value)

	// a cookie-less client gets its own session and an empty cart
	other := newClient(t, router)
	_, otherResp := other.do(http.MethodGet, "/api/v1/cart/", "", nil)
	require.Equal(t, float64(0), otherResp["total_items"])
}
