package soap_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/domain/repository"
	"github.com/jhoicas/resource-api/internal/interfaces/soap"
	"github.com/jhoicas/resource-api/internal/testutil/memstore"
)

func newSOAPApp() *fiber.App {
	app := fiber.New()
	soap.NewHandler(usecase.NewProductUseCase(memstore.New().Products()), nil).Register(app)
	return app
}

// brokenProducts simula una base de datos caída al insertar.
type brokenProducts struct {
	repository.ProductRepository
}

func (brokenProducts) Create(context.Context, *entity.Product) error {
	return errors.New("connection reset by peer")
}

func post(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", soap.ContentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandler_CreateProduct(t *testing.T) {
	resp := post(t, newSOAPApp(), `<Envelope><Body><CreateProduct><request><name>x</name><about>y</about><price>9.5</price></request></CreateProduct></Body></Envelope>`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	out, err := soap.ParseCreateProductResponse(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "x", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("9.5")))
}

func TestHandler_CampoFaltanteDevuelveSenderFault(t *testing.T) {
	resp := post(t, newSOAPApp(), `<Envelope><Body><CreateProduct><request><name>My product</name></request></CreateProduct></Body></Envelope>`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	_, err := soap.ParseCreateProductResponse(raw)
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.Equal(t, soap.CodeSender, f.Code)
	assert.Equal(t, soap.SubcodeBadArgs, f.Subcode)
	assert.Equal(t, "Processing Error", f.Reason)
}

func TestHandler_PrecioConTresDecimalesDevuelveSenderFault(t *testing.T) {
	resp := post(t, newSOAPApp(), `<Envelope><Body><CreateProduct><name>x</name><about>y</about><price>9.999</price></CreateProduct></Body></Envelope>`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	_, err := soap.ParseCreateProductResponse(raw)
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.True(t, f.IsSender())
	assert.Contains(t, string(raw), "price")
}

func TestHandler_ErrorDePersistenciaDevuelveReceiverFault(t *testing.T) {
	app := fiber.New()
	soap.NewHandler(usecase.NewProductUseCase(brokenProducts{}), nil).Register(app)

	resp := post(t, app, `<Envelope><Body><CreateProduct><request><name>x</name><about>y</about><price>9.5</price></request></CreateProduct></Body></Envelope>`)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, soap.ContentType, resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(raw), "connection reset")

	_, err := soap.ParseCreateProductResponse(raw)
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.Equal(t, soap.CodeReceiver, f.Code)
	assert.False(t, f.IsSender())
	assert.Equal(t, "Processing Error", f.Reason)
}

func TestHandler_WSDL(t *testing.T) {
	app := newSOAPApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products?wsdl", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `<service name="ProductsService">`)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/products", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestClient_ContraServidor(t *testing.T) {
	srv := httptest.NewServer(adaptor.FiberApp(newSOAPApp()))
	defer srv.Close()
	client := soap.NewClient(srv.URL+"/products", 5*time.Second)
	ctx := context.Background()

	out, err := client.CreateProduct(ctx, dto.CreateProductRequest{Name: "My product", About: "A great product", Price: decimal.RequireFromString("99.99")})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "A great product", out.About)

	_, err = client.CreateProduct(ctx, dto.CreateProductRequest{Name: "sin precio", About: "x"})
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.True(t, f.IsSender())

	wsdl, err := client.WSDL(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(wsdl), "CreateProduct")
}
