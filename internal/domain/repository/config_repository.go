package repository

import (
	"github.com/lfmorato/event-report-dashboard-go/internal/shared/types"
)

type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
