package actions

import (
	"context"

	"github.com/flowi-app/flowi-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
