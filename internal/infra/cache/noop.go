package cache

import (
	"context"
	"time"
)

// NopSettingsInvalidator заглушка для режима без Redis
type NopSettingsInvalidator struct{}

func (NopSettingsInvalidator) Invalidate(ctx context.Context) {}

// NopOverrideInvalidator заглушка для режима без Redis
type NopOverrideInvalidator struct{}

func (NopOverrideInvalidator) Invalidate(ctx context.Context, date time.Time) {}
