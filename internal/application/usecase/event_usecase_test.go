package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/resource-api/internal/application/dto"
	"github.com/jhoicas/resource-api/internal/application/usecase"
	"github.com/jhoicas/resource-api/internal/domain/entity"
	"github.com/jhoicas/resource-api/internal/testutil/memstore"
)

func viewAt(ts time.Time) dto.CreateViewRequest {
	return dto.CreateViewRequest{
		Source:    "web",
		URL:       "https://example.com/",
		Visitor:   "v1",
		CreatedAt: &dto.FlexibleTime{Time: ts},
		Meta:      map[string]any{"ref": "ads"},
	}
}

func TestEventUseCase_ListMasRecientesPrimero(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewEventUseCase(memstore.New().Events())
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := uc.CreateView(ctx, viewAt(base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := uc.CreateGoal(ctx, dto.CreateGoalRequest{CreateViewRequest: viewAt(base), Goal: "signup"})
	require.NoError(t, err)

	views, err := uc.List(ctx, entity.EventView, 2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].CreatedAt.After(views[1].CreatedAt))

	goals, err := uc.List(ctx, entity.EventGoal, 0)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "signup", goals[0].Goal)
}

func TestEventUseCase_CreateAction(t *testing.T) {
	uc := usecase.NewEventUseCase(memstore.New().Events())
	out, err := uc.CreateAction(context.Background(), dto.CreateActionRequest{CreateViewRequest: viewAt(time.Now()), Action: "click"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "click", out.Action)
	assert.Equal(t, "ads", out.Meta["ref"])
}

func TestEventUseCase_FechaEnMilisegundosUTC(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	ts := time.Date(2024, 3, 1, 7, 30, 0, 123456789, bogota)
	uc := usecase.NewEventUseCase(memstore.New().Events())

	out, err := uc.CreateView(context.Background(), viewAt(ts))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, out.CreatedAt.Location())
	assert.Equal(t, 123000000, out.CreatedAt.Nanosecond())
	assert.True(t, ts.Truncate(time.Millisecond).Equal(out.CreatedAt))
}
