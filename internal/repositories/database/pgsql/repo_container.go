package pgsql

import (
	portsrepo "github.com/SscSPs/procurement_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	orderRepo := newPgxOrderRepository(dbPool)
	directoryRepo := newPgxDirectoryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		OrderRepo:     orderRepo,
		DirectoryRepo: directoryRepo,
	}
}
