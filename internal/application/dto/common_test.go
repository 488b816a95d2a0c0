package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/dto"
)

func TestFlexibleTime_Formatos(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"rfc3339":  `"2024-03-01T00:00:00Z"`,
		"fecha":    `"2024-03-01"`,
		"epoch ms": `1709251200000`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var ft dto.FlexibleTime
			require.NoError(t, json.Unmarshal([]byte(raw), &ft))
			assert.True(t, want.Equal(ft.Time), "got %s", ft.Time)
		})
	}
}

func TestFlexibleTime_Invalida(t *testing.T) {
	var ft dto.FlexibleTime
	assert.Error(t, json.Unmarshal([]byte(`"ayer"`), &ft))
	assert.Error(t, json.Unmarshal([]byte(`true`), &ft))
}
