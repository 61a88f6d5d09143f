package batch

import "context"

// Processor handles one dropped URL list file end to end.
type Processor interface {
	Process(ctx context.Context, listPath string) error
}
