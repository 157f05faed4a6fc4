package database

// DataStore defines the unified interface for all data operations needed by the services.
// Consumers can depend on the smaller TodoReader/TodoWriter interfaces for clearer dependencies.
type DataStore interface {
	TodoRepository
}
