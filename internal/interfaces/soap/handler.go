package soap

import (
	_ "embed"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/application/validation"
	"github.com/jhoicas/resource-api/pkg/logger"
)

//go:embed products.wsdl
var productsWSDL []byte

// Handler servicio ProductsService sobre Fiber.
type Handler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewHandler construye el handler SOAP.
func NewHandler(uc *usecase.ProductUseCase, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{uc: uc, log: log}
}

// Register monta POST /products (operación) y GET /products?wsdl.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/products", h.CreateProduct)
	app.Get("/products", h.WSDL)
}

// WSDL devuelve la descripción del servicio.
func (h *Handler) WSDL(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("wsdl") {
		return c.Status(fiber.StatusNotFound).SendString("404: Not Found: " + c.OriginalURL())
	}
	c.Set(fiber.HeaderContentType, "text/xml; charset=utf-8")
	return c.Send(productsWSDL)
}

// CreateProduct valida y persiste el producto; los errores salen como soap:Fault.
func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	in, err := ParseCreateProductRequest(c.Body())
	if err != nil {
		return h.fault(c, err)
	}
	if err := validation.Validate(&in); err != nil {
		return h.fault(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fault(c, err)
	}
	body, err := BuildCreateProductResponse(out)
	if err != nil {
		return h.fault(c, err)
	}
	c.Set(fiber.HeaderContentType, ContentType)
	return c.Send(body)
}

func (h *Handler) fault(c *fiber.Ctx, err error) error {
	var f *Fault
	var violations validation.Violations
	switch {
	case errors.As(err, &f):
	case errors.As(err, &violations):
		f = SenderFault(violations)
	default:
		h.log.Error().Err(err).Msg("soap: CreateProduct")
		f = ReceiverFault()
	}
	status := fiber.StatusInternalServerError
	if f.IsSender() {
		status = fiber.StatusBadRequest
	}
	body, berr := BuildFault(f)
	if berr != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(berr.Error())
	}
	c.Set(fiber.HeaderContentType, ContentType)
	return c.Status(status).Send(body)
}
