package usecase

import (
	"context"
	"sort"
	"time"
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]HealthCheck
}

func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks}
}

// Check runs every probe with a short timeout; ok is false when any probe fails
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	result := map[string]string{"status": "ok"}
	ok := true
	for _, name := range names {
		if err := u.checks[name](ctx); err != nil {
			result[name] = "down"
			ok = false
			continue
		}
		result[name] = "up"
	}
	if !ok {
		result["status"] = "degraded"
	}
	return result, ok
}
