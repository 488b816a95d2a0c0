package dto

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/resource-api/internal/application/validation"
)

func init() {
	// Los montos viajan como número JSON, igual que se reciben.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Errors  validation.Violations `json:"errors,omitempty"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// FlexibleTime fecha coercible: acepta RFC 3339, "YYYY-MM-DD" o epoch en milisegundos.
type FlexibleTime struct {
	time.Time
}

// UnmarshalJSON implementa la coerción de fecha.
func (t *FlexibleTime) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	if !strings.HasPrefix(raw, `"`) {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return invalidTime(raw)
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return invalidTime("string")
}

// invalidTime error de tipo; encoding/json le añade el nombre del campo.
func invalidTime(value string) error {
	return &json.UnmarshalTypeError{Value: value, Type: reflect.TypeOf(time.Time{})}
}

// MarshalJSON serializa en RFC 3339.
func (t FlexibleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}
