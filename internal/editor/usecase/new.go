package usecase

import (
	"sync"

	"github.com/google/uuid"

	"insighthub/internal/catalog"
	"insighthub/internal/settings"
	remote "insighthub/internal/sync"
	pkgLog "insighthub/pkg/log"
)

// IDPrefix starts every minted entry id.
const IDPrefix = "item-"

type implUseCase struct {
	l        pkgLog.Logger
	catalog  catalog.UseCase
	settings settings.UseCase
	pusher   remote.Pusher
	newID    func() string

	// mu spans mutate and push so a second push never starts inside the same window.
	mu sync.Mutex
}

// New creates the editor. Ids are UUIDv7, so they sort by creation time.
func New(l pkgLog.Logger, catalogUC catalog.UseCase, settingsUC settings.UseCase, pusher remote.Pusher) *implUseCase {
	return &implUseCase{
		l:        l,
		catalog:  catalogUC,
		settings: settingsUC,
		pusher:   pusher,
		newID:    newEntryID,
	}
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return IDPrefix + id.String()
}
