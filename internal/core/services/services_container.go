package services

import (
	portsrepo "github.com/SscSPs/contabil_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/SscSPs/contabil_ledger/internal/platform/config"
	"github.com/SscSPs/contabil_ledger/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The posting engine is shared: the title service calls it inside creation.
	container.Posting = NewPostingEngine(repos.AccountRepo, repos.TitleRepo)

	container.Account = NewAccountService(repos.AccountRepo)
	container.MovementType = NewMovementTypeService(repos.MovementTypeRepo, repos.AccountRepo)
	container.Partner = NewPartnerService(repos.PartnerRepo)
	container.Title = NewTitleService(repos.TitleRepo, repos.MovementTypeRepo, repos.PartnerRepo, container.Posting)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)

	container.User = NewUserService(repos.UserRepo, repos.PermissionRepo, cfg.DefaultRole)
	container.Permission = NewPermissionService(repos.UserRepo, repos.PermissionRepo)
	container.Auth = NewAuthService(utils.NewTokenSigner(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration), repos.UserRepo)

	return container
}
