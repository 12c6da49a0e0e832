package storage

// ApiStore defines the complete set of operations needed by the API and the lending service.
// It composes other interfaces to provide a clear boundary for the API's data access.
type ApiStore interface {
	BookStore
	BorrowerStore
	LoanStore
	LedgerReader
	SettingsStore
}
