package editor

import "context"

// UseCase turns form submissions into catalog mutations and mirrors them remotely.
type UseCase interface {
	// Form returns the prefilled form for an existing entry.
	Form(ctx context.Context, id string) (SaveInput, error)
	Save(ctx context.Context, input SaveInput) (SaveOutput, error)
	Delete(ctx context.Context, id string) (DeleteOutput, error)
}
