package interfaces

import (
	"context"
	"freight_quote/internal/domain/entities"
)

// IArtifactSink receives every rendered export (single JSON, batch archive, email
// attachment). It replaces browser download mechanics so the exporter stays
// platform independent.

type IArtifactSink interface {
	Emit(ctx context.Context, artifact entities.Artifact) error
}

// IArtifactArchive is a sink that can also give artifacts back.

type IArtifactArchive interface {
	IArtifactSink
	GetByID(ctx context.Context, id string) (entities.Artifact, error)
	ListByReference(ctx context.Context, reference string) ([]entities.Artifact, error)
}
