package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service layer at startup.
type RepositoryProvider struct {
	OrderRepo     OrderRepositoryFacade
	DirectoryRepo DirectoryRepositoryFacade
}
