package services

import (
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/events"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.Publisher) *portssvc.ServiceContainer {
	shared := []Option{
		WithEventPublisher(publisher),
		WithEditWindow(cfg.EditWindow),
		WithLocation(cfg.ReportLocation),
	}

	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo, shared...),
		Transfer:    NewTransferService(repos.TransferRepo, repos.AccountRepo, shared...),
		Transaction: NewTransactionService(repos.TransactionRepo, shared...),
		Category:    NewCategoryService(repos.CategoryRepo, shared...),
		Reporting:   NewReportingService(repos.TransactionRepo, repos.AccountRepo, shared...),
		User:        NewUserService(repos.UserRepo, shared...),
		Token:       NewTokenService(cfg, shared...),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade            = (*accountService)(nil)
	_ portssvc.TransferSvcFacade           = (*transferService)(nil)
	_ portssvc.TransactionSvcFacade        = (*transactionService)(nil)
	_ portssvc.CategorySvcFacade           = (*categoryService)(nil)
	_ portssvc.ReportingSvcFacade          = (*reportingService)(nil)
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
)
