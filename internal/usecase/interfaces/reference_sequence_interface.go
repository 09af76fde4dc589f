package interfaces

// IReferenceSequence supplies the 3-digit suffix of quote references.
// Next must return a value in [0, 999].
type IReferenceSequence interface {
	Next() int
}

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mock_interfaces freight_quote/internal/usecase/interfaces IArtifactSink,IArtifactArchive,IEmailSender,IDraftQuoteRepository,IReferenceSequence
