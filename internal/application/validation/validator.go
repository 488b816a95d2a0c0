// Package validation valida DTOs con go-playground/validator y traduce los
// errores a violaciones por campo (nombre json + regla incumplida).
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como número (required, gt, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// decimals=N: como máximo N cifras decimales. fl.Field() ya es float64; se lee el
	// decimal del struct padre.
	_ = v.RegisterValidation("decimals", func(fl validator.FieldLevel) bool {
		places, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		field := reflect.Indirect(reflect.Indirect(fl.Parent()).FieldByName(fl.StructFieldName()))
		if !field.IsValid() {
			return true
		}
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return true
		}
		return d.Equal(d.Truncate(int32(places)))
	})
	return v
}

// Violation una regla incumplida sobre un campo.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations lista de violaciones; implementa error.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, it := range v {
		parts = append(parts, it.Field+": "+it.Message)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// Validate devuelve nil si s cumple sus reglas o Violations en caso contrario.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// FromDecodeError convierte un error de tipo al decodificar JSON en una violación
// del campo afectado. Devuelve nil si err no es un error de tipo.
func FromDecodeError(err error) Violations {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil
	}
	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	return Violations{{
		Field:   field,
		Rule:    "type",
		Message: fmt.Sprintf("debe ser de tipo %s", jsonType(typeErr.Type)),
	}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "debe tener al menos " + fe.Param() + " elementos"
		}
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "debe tener como máximo " + fe.Param() + " caracteres"
	case "email":
		return "debe ser un email válido"
	case "url":
		return "debe ser una URL válida"
	case "uuid":
		return "debe ser un UUID válido"
	case "decimals":
		return "debe tener como máximo " + fe.Param() + " decimales"
	default:
		return "no cumple la regla " + fe.Tag()
	}
}

func jsonType(t reflect.Type) string {
	if t == nil {
		return "desconocido"
	}
	if t == reflect.TypeOf(time.Time{}) {
		return "fecha"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}
