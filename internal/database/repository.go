package database

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TodoRepo
}

// NewRepository creates a new Repository instance on an open handle.
func NewRepository(h *Handle) *Repository {
	return &Repository{
		TodoRepo: NewTodoRepo(h),
	}
}
