//go:build wireinject
// +build wireinject

package facade

import (
	"github.com/google/wire"

	catalogcmd "github.com/tair/barcode-inventory/internal/catalog/usecase/command"
	catalogquery "github.com/tair/barcode-inventory/internal/catalog/usecase/query"
	ledgercmd "github.com/tair/barcode-inventory/internal/ledger/usecase/command"
	ledgerquery "github.com/tair/barcode-inventory/internal/ledger/usecase/query"
	"github.com/tair/barcode-inventory/pkg/storage"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideCategoryRepository,
	ProvideProductLookup,
	ProvideInventoryRepository,
	ProvideTransactionRepository,
	ProvideLocker,
)

var UsecaseSet = wire.NewSet(
	catalogcmd.NewCreateProductHandler,
	catalogcmd.NewUpdateProductHandler,
	catalogcmd.NewDeleteProductHandler,
	catalogcmd.NewCreateCategoryHandler,
	catalogcmd.NewRenameCategoryHandler,
	catalogcmd.NewDeleteCategoryHandler,
	catalogquery.NewGetProductHandler,
	catalogquery.NewListProductsHandler,
	catalogquery.NewListCategoriesHandler,
	ledgercmd.NewApplyTransactionHandler,
	ledgercmd.NewRevertTransactionHandler,
	ledgercmd.NewClearLogHandler,
	ledgerquery.NewListTransactionsHandler,
	ledgerquery.NewListInventoryHandler,
	ledgerquery.NewValuationHandler,
)

// InitializeFacade initializes the facade with all dependencies
func InitializeFacade(store *storage.Store) (*Facade, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		NewFacadeWithDI,
	)
	return nil, nil
}
