package repository

import (
	"context"

	"github.com/lfmorato/event-report-dashboard-go/internal/domain/entity"
)

// SourceRepository is the acquisition side: it turns a downloaded or
// uploaded export file into a raw table. The login/download robot that
// produces the file lives outside this module.
type SourceRepository interface {
	ReadTable(ctx context.Context, path string) (*entity.RawTable, error)
}
