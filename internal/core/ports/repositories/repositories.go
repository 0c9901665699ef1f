package repositories

// RepositoryProvider groups the repository implementations handed to the
// service container. Backends are interchangeable per store.
type RepositoryProvider struct {
	ProjectRepo  ProjectRepository
	UserRepo     UserRepository
	SettingsRepo SettingsRepository
}
