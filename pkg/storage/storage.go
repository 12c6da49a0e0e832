package storage

//go:generate go run github.com/vektra/mockery/v2 --config=../../.mockery.yaml

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on the
// more granular interfaces (ApiStore, LoanStore, etc.) instead of this one.
type Storage interface {
	ApiStore
	WebSocketManager
}
