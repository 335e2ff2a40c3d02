package pgsql

import (
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accounts := newPgxAccountRepository(pool)
	movementTypes := newPgxMovementTypeRepository(pool, accounts)
	partners := newPgxPartnerRepository(pool)
	journal := newPgxJournalRepository(pool, accounts)
	users := newPgxUserRepository(pool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accounts,
		MovementTypeRepo: movementTypes,
		TitleRepo:        newPgxTitleRepository(pool, movementTypes, partners, journal),
		JournalRepo:      journal,
		PartnerRepo:      partners,
		UserRepo:         users,
		PermissionRepo:   users,
		ReportingRepo:    newPgxReportingRepository(pool),
	}
}
