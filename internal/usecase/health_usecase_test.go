package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-resume-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	result, ok := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"database": up}).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"status": "ok", "database": "up"}, result)

	result, ok = usecase.NewHealthUsecase(map[string]usecase.HealthCheck{"database": up, "redis": down}).Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "down", result["redis"])
}
