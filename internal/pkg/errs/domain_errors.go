package errs

// Cross-layer error kinds surfaced to callers of the reservation engine.
// Layer-specific sentinels are marked with one of these so the HTTP layer can
// classify them without knowing every package.
var (
	ErrNotFound           = New("not found")
	ErrForbidden          = New("forbidden")
	ErrGatewayUnavailable = New("persistence gateway unavailable")
)
