package ports

import "context"

// Revalidator avisa as telas abertas de um cliente que o estado mudou
type Revalidator interface {
	Revalidate(ctx context.Context, clientID, kind string)
}

// Metrics registra contadores operacionais
type Metrics interface {
	DocumentStored(variant string)
	DocumentDeleted()
	StorageFailure(operation string)
	AccessDenied(reason string)
}
