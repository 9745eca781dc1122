package facade

import (
	"sync"

	catalogdomain "github.com/tair/barcode-inventory/internal/catalog/domain"
	catalogrepo "github.com/tair/barcode-inventory/internal/catalog/repository"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	ledgerrepo "github.com/tair/barcode-inventory/internal/ledger/repository"
	"github.com/tair/barcode-inventory/pkg/storage"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(store *storage.Store) catalogdomain.ProductRepository {
	return catalogrepo.NewFileProductRepository(store)
}

// ProvideCategoryRepository provides the category repository
func ProvideCategoryRepository(store *storage.Store) catalogdomain.CategoryRepository {
	return catalogrepo.NewFileCategoryRepository(store)
}

// ProvideProductLookup provides the ledger's view of the catalog
func ProvideProductLookup(store *storage.Store) ledgerdomain.ProductLookup {
	return catalogrepo.NewFileProductRepository(store)
}

// ProvideInventoryRepository provides the inventory cell repository
func ProvideInventoryRepository(store *storage.Store) ledgerdomain.InventoryRepository {
	return ledgerrepo.NewFileInventoryRepository(store)
}

// ProvideTransactionRepository provides the transaction log repository
func ProvideTransactionRepository(store *storage.Store) ledgerdomain.TransactionRepository {
	return ledgerrepo.NewFileTransactionRepository(store)
}

// ProvideLocker provides the store-wide mutation lock
func ProvideLocker(store *storage.Store) sync.Locker {
	return store
}
