// Package soap expone CreateProduct como servicio SOAP 1.2 y el cliente correspondiente.
// Los envelopes se leen y construyen con etree; el prefijo de namespace no importa al leer.
package soap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/validation"
)

const (
	NamespaceEnvelope = "http://www.w3.org/2003/05/soap-envelope"
	NamespaceRPC      = "http://www.w3.org/2003/05/soap-rpc"
	NamespaceService  = "http://example.com/products"

	ContentType = "application/soap+xml; charset=utf-8"

	CodeSender       = "soap:Sender"
	CodeReceiver     = "soap:Receiver"
	SubcodeBadArgs   = "rpc:BadArguments"
	ReasonProcessing = "Processing Error"
)

// Fault SOAP 1.2. Detail lleva las violaciones de validación, si las hay.
type Fault struct {
	Code    string
	Subcode string
	Reason  string
	Detail  validation.Violations
}

func (f *Fault) Error() string {
	return fmt.Sprintf("soap fault %s (%s): %s", f.Code, f.Subcode, f.Reason)
}

// IsSender indica que la culpa es del cliente (HTTP 400).
func (f *Fault) IsSender() bool {
	return localName(f.Code) == "Sender"
}

// SenderFault fault por argumentos inválidos.
func SenderFault(detail validation.Violations) *Fault {
	return &Fault{Code: CodeSender, Subcode: SubcodeBadArgs, Reason: ReasonProcessing, Detail: detail}
}

// ReceiverFault fault por fallo del servidor.
func ReceiverFault() *Fault {
	return &Fault{Code: CodeReceiver, Reason: ReasonProcessing}
}

// ParseCreateProductRequest extrae la entrada de CreateProduct. Acepta los campos
// directamente bajo CreateProduct o dentro de un elemento request.
func ParseCreateProductRequest(raw []byte) (dto.CreateProductRequest, error) {
	var in dto.CreateProductRequest
	op, err := readOperation(raw)
	if err != nil {
		return in, SenderFault(nil)
	}
	if localName(op.Tag) != "CreateProduct" {
		return in, SenderFault(validation.Violations{{Field: "operation", Rule: "oneof", Message: "operación no soportada: " + op.Tag}})
	}
	if req := child(op, "request"); req != nil {
		op = req
	}
	in.Name = childText(op, "name")
	in.About = childText(op, "about")
	if price := childText(op, "price"); price != "" {
		p, err := decimal.NewFromString(price)
		if err != nil {
			return in, SenderFault(validation.Violations{{Field: "price", Rule: "number", Message: "debe ser un número"}})
		}
		in.Price = p
	}
	return in, nil
}

// BuildCreateProductRequest envelope de petición que envía el cliente.
func BuildCreateProductRequest(in dto.CreateProductRequest) ([]byte, error) {
	doc, body := newEnvelope()
	op := body.CreateElement("tns:CreateProduct")
	op.CreateAttr("xmlns:tns", NamespaceService)
	req := op.CreateElement("tns:request")
	req.CreateElement("tns:name").SetText(in.Name)
	req.CreateElement("tns:about").SetText(in.About)
	req.CreateElement("tns:price").SetText(in.Price.String())
	return write(doc)
}

// BuildCreateProductResponse envelope con el producto creado.
func BuildCreateProductResponse(p *dto.ProductResponse) ([]byte, error) {
	doc, body := newEnvelope()
	resp := body.CreateElement("tns:CreateProductResponse")
	resp.CreateAttr("xmlns:tns", NamespaceService)
	resp.CreateElement("tns:id").SetText(p.ID)
	resp.CreateElement("tns:name").SetText(p.Name)
	resp.CreateElement("tns:about").SetText(p.About)
	resp.CreateElement("tns:price").SetText(p.Price.String())
	return write(doc)
}

// BuildFault envelope con un soap:Fault.
func BuildFault(f *Fault) ([]byte, error) {
	doc, body := newEnvelope()
	fault := body.CreateElement("soap:Fault")
	code := fault.CreateElement("soap:Code")
	code.CreateElement("soap:Value").SetText(f.Code)
	if f.Subcode != "" {
		code.CreateElement("soap:Subcode").CreateElement("soap:Value").SetText(f.Subcode)
	}
	text := fault.CreateElement("soap:Reason").CreateElement("soap:Text")
	text.CreateAttr("xml:lang", "en")
	text.SetText(f.Reason)
	if len(f.Detail) > 0 {
		detail := fault.CreateElement("soap:Detail")
		for _, v := range f.Detail {
			el := detail.CreateElement("tns:violation")
			el.CreateAttr("xmlns:tns", NamespaceService)
			el.CreateAttr("field", v.Field)
			el.CreateAttr("rule", v.Rule)
			el.SetText(v.Message)
		}
	}
	return write(doc)
}

// ParseCreateProductResponse decodifica la respuesta; un soap:Fault se devuelve como *Fault.
func ParseCreateProductResponse(raw []byte) (*dto.ProductResponse, error) {
	op, err := readOperation(raw)
	if err != nil {
		return nil, err
	}
	if localName(op.Tag) == "Fault" {
		return nil, parseFault(op)
	}
	if localName(op.Tag) != "CreateProductResponse" {
		return nil, fmt.Errorf("soap: respuesta inesperada %q", op.Tag)
	}
	out := &dto.ProductResponse{
		ID:    childText(op, "id"),
		Name:  childText(op, "name"),
		About: childText(op, "about"),
	}
	price, err := decimal.NewFromString(childText(op, "price"))
	if err != nil {
		return nil, fmt.Errorf("soap: precio inválido en respuesta: %w", err)
	}
	out.Price = price
	return out, nil
}

func parseFault(el *etree.Element) *Fault {
	f := &Fault{}
	if code := child(el, "Code"); code != nil {
		f.Code = childText(code, "Value")
		if sub := child(code, "Subcode"); sub != nil {
			f.Subcode = childText(sub, "Value")
		}
	}
	if reason := child(el, "Reason"); reason != nil {
		f.Reason = childText(reason, "Text")
	}
	if detail := child(el, "Detail"); detail != nil {
		for _, v := range detail.ChildElements() {
			f.Detail = append(f.Detail, validation.Violation{
				Field:   v.SelectAttrValue("field", ""),
				Rule:    v.SelectAttrValue("rule", ""),
				Message: strings.TrimSpace(v.Text()),
			})
		}
	}
	return f
}

// readOperation devuelve el primer hijo de Envelope/Body.
func readOperation(raw []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("soap: parsear envelope: %w", err)
	}
	root := doc.Root()
	if root == nil || localName(root.Tag) != "Envelope" {
		return nil, errors.New("soap: falta Envelope")
	}
	body := child(root, "Body")
	if body == nil {
		return nil, errors.New("soap: falta Body")
	}
	ops := body.ChildElements()
	if len(ops) == 0 {
		return nil, errors.New("soap: Body vacío")
	}
	return ops[0], nil
}

func newEnvelope() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	env := doc.CreateElement("soap:Envelope")
	env.CreateAttr("xmlns:soap", NamespaceEnvelope)
	env.CreateAttr("xmlns:rpc", NamespaceRPC)
	return doc, env.CreateElement("soap:Body")
}

func write(doc *etree.Document) ([]byte, error) {
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("soap: serializar envelope: %w", err)
	}
	return out, nil
}

// child primer hijo con ese nombre local, sin importar el prefijo.
func child(el *etree.Element, local string) *etree.Element {
	for _, c := range el.ChildElements() {
		if localName(c.Tag) == local {
			return c
		}
	}
	return nil
}

func childText(el *etree.Element, local string) string {
	if c := child(el, local); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}

func localName(tag string) string {
	if i := strings.LastIndexByte(tag, ':'); i >= 0 {
		return tag[i+1:]
	}
	return tag
}
