package soap_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/validation"
	"github.com/jhoicas/resource-api/internal/interfaces/soap"
)

func TestParseCreateProductRequest_ConWrapperRequest(t *testing.T) {
	raw := []byte(`<?xml version="1.0"?>
<s:Envelope xmlns:s="http://www.w3.org/2003/05/soap-envelope" xmlns:p="http://example.com/products">
  <s:Body>
    <p:CreateProduct>
      <p:request>
        <p:name>My product</p:name>
        <p:about>A great product</p:about>
        <p:price>99.99</p:price>
      </p:request>
    </p:CreateProduct>
  </s:Body>
</s:Envelope>`)
	in, err := soap.ParseCreateProductRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "My product", in.Name)
	assert.Equal(t, "A great product", in.About)
	assert.True(t, in.Price.Equal(decimal.RequireFromString("99.99")))
}

func TestParseCreateProductRequest_SinPrefijosNiWrapper(t *testing.T) {
	raw := []byte(`<Envelope xmlns="http://www.w3.org/2003/05/soap-envelope"><Body>
<CreateProduct><name>x</name><about>y</about><price>3</price></CreateProduct>
</Body></Envelope>`)
	in, err := soap.ParseCreateProductRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "x", in.Name)
	assert.True(t, in.Price.Equal(decimal.NewFromInt(3)))
}

func TestParseCreateProductRequest_PrecioNoNumerico(t *testing.T) {
	raw := []byte(`<Envelope><Body><CreateProduct><name>x</name><about>y</about><price>caro</price></CreateProduct></Body></Envelope>`)
	_, err := soap.ParseCreateProductRequest(raw)
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.True(t, f.IsSender())
	require.Len(t, f.Detail, 1)
	assert.Equal(t, "price", f.Detail[0].Field)
}

func TestParseCreateProductRequest_OperacionDesconocida(t *testing.T) {
	raw := []byte(`<Envelope><Body><DeleteProduct/></Body></Envelope>`)
	_, err := soap.ParseCreateProductRequest(raw)
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.Equal(t, soap.CodeSender, f.Code)
}

func TestParseCreateProductRequest_XMLInvalido(t *testing.T) {
	_, err := soap.ParseCreateProductRequest([]byte(`no es xml`))
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.True(t, f.IsSender())
}

func TestBuildFault_LoLeeElCliente(t *testing.T) {
	raw, err := soap.BuildFault(soap.SenderFault(validation.Violations{{Field: "name", Rule: "required", Message: "es obligatorio"}}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<soap:Value>soap:Sender</soap:Value>")
	assert.Contains(t, string(raw), "<soap:Value>rpc:BadArguments</soap:Value>")
	assert.Contains(t, string(raw), "Processing Error")

	_, err = soap.ParseCreateProductResponse(raw)
	var f *soap.Fault
	require.True(t, errors.As(err, &f))
	assert.Equal(t, soap.SubcodeBadArgs, f.Subcode)
	assert.Equal(t, soap.ReasonProcessing, f.Reason)
	require.Len(t, f.Detail, 1)
	assert.Equal(t, "name", f.Detail[0].Field)
}

func TestBuildCreateProductRequest_LoLeeElServidor(t *testing.T) {
	raw, err := soap.BuildCreateProductRequest(dto.CreateProductRequest{Name: "a", About: "b", Price: decimal.RequireFromString("1.5")})
	require.NoError(t, err)
	in, err := soap.ParseCreateProductRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "a", in.Name)
	assert.True(t, in.Price.Equal(decimal.RequireFromString("1.5")))
}
