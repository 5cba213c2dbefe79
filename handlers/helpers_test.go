package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"guitar_square_backend/models"
	"guitar_square_backend/payment"
	"guitar_square_backend/routes"
	"guitar_square_backend/store"
	"guitar_square_backend/utils"
)

func seedProduct(st *memStore, product *models.Product) string {
	id, _ := st.InsertProduct(context.Background(), product)
	return id
}

// fakeGateway records intent calls instead of talking to the processor.
type fakeGateway struct {
	calls   int
	amounts []int64
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount int64) (string, error) {
	g.calls++
	g.amounts = append(g.amounts, amount)
	return "cs_test_secret", nil
}

var _ payment.Gateway = (*fakeGateway)(nil)

func newTestApp(t *testing.T, st store.Store, gw payment.Gateway) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	app := fiber.New()
	routes.Setup(app, st, gw)
	return app
}

func bearerToken(t *testing.T, email string) string {
	t.Helper()
	token, err := utils.SignToken(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeSlice(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
