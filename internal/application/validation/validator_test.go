package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/validation"
)

func fieldRules(t *testing.T, err error) map[string]string {
	t.Helper()
	var v validation.Violations
	require.ErrorAs(t, err, &v)
	out := make(map[string]string, len(v))
	for _, it := range v {
		out[it.Field] = it.Rule
	}
	return out
}

func TestValidate_ProductoValido(t *testing.T) {
	req := dto.CreateProductRequest{Name: "Lápiz", About: "HB", Price: decimal.NewFromInt(10)}
	assert.NoError(t, validation.Validate(req))
}

func TestValidate_PrecioNoPositivo(t *testing.T) {
	for _, price := range []string{"0", "-3.5"} {
		req := dto.CreateProductRequest{Name: "Lápiz", About: "HB", Price: decimal.RequireFromString(price)}
		rules := fieldRules(t, validation.Validate(req))
		assert.Contains(t, rules, "price", "precio %s", price)
	}
}

func TestValidate_UsuarioInvalido(t *testing.T) {
	req := dto.CreateUserRequest{Username: "ab", Email: "sin-arroba", Password: "supersecreto"}
	rules := fieldRules(t, validation.Validate(req))
	assert.Equal(t, "min", rules["username"])
	assert.Equal(t, "email", rules["email"])
	assert.NotContains(t, rules, "password")
}

func TestValidate_PatchConPrecioNegativo(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	rules := fieldRules(t, validation.Validate(dto.PatchProductRequest{Price: &neg}))
	assert.Equal(t, "gt", rules["price"])
}

func TestValidate_PatchVacioEsValido(t *testing.T) {
	assert.NoError(t, validation.Validate(dto.PatchProductRequest{}))
}

func TestValidate_PedidoSinProductos(t *testing.T) {
	req := dto.CreateOrderRequest{UserID: "6f1c2a4e-8f4b-4a57-9a43-0f5b7f6d2b11", ProductIDs: []string{}}
	rules := fieldRules(t, validation.Validate(req))
	assert.Equal(t, "min", rules["productIds"])
}

func TestValidate_EventoCamposDeclarados(t *testing.T) {
	var req dto.CreateActionRequest
	body := `{"source":"web","url":"no es url","visitor":"v1","meta":{}}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	rules := fieldRules(t, validation.Validate(req))
	assert.Equal(t, "url", rules["url"])
	assert.Equal(t, "required", rules["createdAt"])
	assert.Equal(t, "required", rules["action"])
	assert.NotContains(t, rules, "meta")
}

func TestFromDecodeError_TipoIncorrecto(t *testing.T) {
	var req dto.CreateUserRequest
	err := json.Unmarshal([]byte(`{"username":123}`), &req)
	require.Error(t, err)

	v := validation.FromDecodeError(err)
	require.Len(t, v, 1)
	assert.Equal(t, "username", v[0].Field)
	assert.Equal(t, "type", v[0].Rule)
}

func TestFromDecodeError_NoEsDeTipo(t *testing.T) {
	assert.Nil(t, validation.FromDecodeError(assert.AnError))
}

func TestValidate_PrecioConMasDeDosDecimales(t *testing.T) {
	for _, price := range []string{"10.005", "0.001"} {
		req := dto.CreateProductRequest{Name: "Lápiz", About: "HB", Price: decimal.RequireFromString(price)}
		rules := fieldRules(t, validation.Validate(req))
		assert.Equal(t, "decimals", rules["price"], "precio %s", price)
	}

	p := decimal.RequireFromString("1.999")
	rules := fieldRules(t, validation.Validate(dto.PatchProductRequest{Price: &p}))
	assert.Equal(t, "decimals", rules["price"])
}

func TestValidate_PrecioConCerosFinales(t *testing.T) {
	for _, price := range []string{"10.5", "10.50", "10.500", "0.01"} {
		req := dto.CreateProductRequest{Name: "Lápiz", About: "HB", Price: decimal.RequireFromString(price)}
		assert.NoError(t, validation.Validate(&req), "precio %s", price)
	}
}
