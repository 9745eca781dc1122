// Package facade is the single call surface over the catalog and ledger
// engine. Both transports go through it: the HTTP handlers marshal requests
// into these methods, and the desktop shell calls them directly. No stock,
// cost, or identity rule lives here.
package facade

import (
	catalogdomain "github.com/tair/barcode-inventory/internal/catalog/domain"
	catalogcmd "github.com/tair/barcode-inventory/internal/catalog/usecase/command"
	catalogquery "github.com/tair/barcode-inventory/internal/catalog/usecase/query"
	ledgerdomain "github.com/tair/barcode-inventory/internal/ledger/domain"
	ledgercmd "github.com/tair/barcode-inventory/internal/ledger/usecase/command"
	ledgerquery "github.com/tair/barcode-inventory/internal/ledger/usecase/query"
	"github.com/tair/barcode-inventory/pkg/storage"
)

// DataSnapshot bundles the three collections the views render from.
type DataSnapshot struct {
	Inventory    map[string]map[string]ledgerdomain.Cell `json:"inventory"`
	Transactions []ledgerdomain.Record                   `json:"transactions"`
	Products     map[string]catalogdomain.Product        `json:"products"`
}

// Facade exposes every engine operation as one typed method.
type Facade struct {
	createProduct  *catalogcmd.CreateProductHandler
	updateProduct  *catalogcmd.UpdateProductHandler
	deleteProduct  *catalogcmd.DeleteProductHandler
	createCategory *catalogcmd.CreateCategoryHandler
	renameCategory *catalogcmd.RenameCategoryHandler
	deleteCategory *catalogcmd.DeleteCategoryHandler

	getProduct     *catalogquery.GetProductHandler
	listProducts   *catalogquery.ListProductsHandler
	listCategories *catalogquery.ListCategoriesHandler

	applyTransaction  *ledgercmd.ApplyTransactionHandler
	revertTransaction *ledgercmd.RevertTransactionHandler
	clearLog          *ledgercmd.ClearLogHandler

	listTransactions *ledgerquery.ListTransactionsHandler
	listInventory    *ledgerquery.ListInventoryHandler
	valuation        *ledgerquery.ValuationHandler
}

// New creates a facade over a store (manual DI for tests and the desktop
// shell; Wire builds the same graph via InitializeFacade).
func New(store *storage.Store) *Facade {
	products := ProvideProductRepository(store)
	categories := ProvideCategoryRepository(store)
	inventory := ProvideInventoryRepository(store)
	transactions := ProvideTransactionRepository(store)
	lookup := ProvideProductLookup(store)
	lock := ProvideLocker(store)

	return NewFacadeWithDI(
		catalogcmd.NewCreateProductHandler(products, inventory, lock),
		catalogcmd.NewUpdateProductHandler(products, inventory, lock),
		catalogcmd.NewDeleteProductHandler(products, inventory, lock),
		catalogcmd.NewCreateCategoryHandler(categories, lock),
		catalogcmd.NewRenameCategoryHandler(categories, lock),
		catalogcmd.NewDeleteCategoryHandler(categories, products, lock),
		catalogquery.NewGetProductHandler(products),
		catalogquery.NewListProductsHandler(products),
		catalogquery.NewListCategoriesHandler(categories),
		ledgercmd.NewApplyTransactionHandler(inventory, transactions, lookup, lock),
		ledgercmd.NewRevertTransactionHandler(inventory, transactions, lock),
		ledgercmd.NewClearLogHandler(transactions, lock),
		ledgerquery.NewListTransactionsHandler(transactions),
		ledgerquery.NewListInventoryHandler(inventory),
		ledgerquery.NewValuationHandler(inventory, lookup),
	)
}

// NewFacadeWithDI creates a facade from pre-built handlers. This is used by
// Wire for automatic dependency injection.
func NewFacadeWithDI(
	createProduct *catalogcmd.CreateProductHandler,
	updateProduct *catalogcmd.UpdateProductHandler,
	deleteProduct *catalogcmd.DeleteProductHandler,
	createCategory *catalogcmd.CreateCategoryHandler,
	renameCategory *catalogcmd.RenameCategoryHandler,
	deleteCategory *catalogcmd.DeleteCategoryHandler,
	getProduct *catalogquery.GetProductHandler,
	listProducts *catalogquery.ListProductsHandler,
	listCategories *catalogquery.ListCategoriesHandler,
	applyTransaction *ledgercmd.ApplyTransactionHandler,
	revertTransaction *ledgercmd.RevertTransactionHandler,
	clearLog *ledgercmd.ClearLogHandler,
	listTransactions *ledgerquery.ListTransactionsHandler,
	listInventory *ledgerquery.ListInventoryHandler,
	valuation *ledgerquery.ValuationHandler,
) *Facade {
	return &Facade{
		createProduct:     createProduct,
		updateProduct:     updateProduct,
		deleteProduct:     deleteProduct,
		createCategory:    createCategory,
		renameCategory:    renameCategory,
		deleteCategory:    deleteCategory,
		getProduct:        getProduct,
		listProducts:      listProducts,
		listCategories:    listCategories,
		applyTransaction:  applyTransaction,
		revertTransaction: revertTransaction,
		clearLog:          clearLog,
		listTransactions:  listTransactions,
		listInventory:     listInventory,
		valuation:         valuation,
	}
}

// LoadData returns the full snapshot the views bootstrap from.
func (f *Facade) LoadData() (*DataSnapshot, error) {
	inventory, err := f.listInventory.Handle(ledgerquery.ListInventoryQuery{})
	if err != nil {
		return nil, err
	}
	transactions, err := f.listTransactions.Handle(ledgerquery.ListTransactionsQuery{})
	if err != nil {
		return nil, err
	}
	products, err := f.listProducts.Handle(catalogquery.ListProductsQuery{})
	if err != nil {
		return nil, err
	}
	return &DataSnapshot{Inventory: inventory, Transactions: transactions, Products: products}, nil
}

func (f *Facade) Categories() (map[string]string, error) {
	return f.listCategories.Handle(catalogquery.ListCategoriesQuery{})
}

func (f *Facade) CreateCategory(name string) (*catalogdomain.Category, error) {
	return f.createCategory.Handle(catalogcmd.CreateCategoryCommand{Name: name})
}

func (f *Facade) RenameCategory(id, newName string) (*catalogdomain.Category, error) {
	return f.renameCategory.Handle(catalogcmd.RenameCategoryCommand{ID: id, NewName: newName})
}

func (f *Facade) DeleteCategory(id string) error {
	return f.deleteCategory.Handle(catalogcmd.DeleteCategoryCommand{ID: id})
}

func (f *Facade) CreateProduct(cmd catalogcmd.CreateProductCommand) (*catalogcmd.CreateProductResult, error) {
	return f.createProduct.Handle(cmd)
}

func (f *Facade) UpdateProduct(cmd catalogcmd.UpdateProductCommand) (*catalogdomain.Product, error) {
	return f.updateProduct.Handle(cmd)
}

func (f *Facade) DeleteProduct(barcode string) error {
	return f.deleteProduct.Handle(catalogcmd.DeleteProductCommand{Barcode: barcode})
}

func (f *Facade) Product(barcode string) (*catalogdomain.Product, error) {
	return f.getProduct.Handle(catalogquery.GetProductQuery{Barcode: barcode})
}

func (f *Facade) ProcessTransaction(cmd ledgercmd.ApplyTransactionCommand) (*ledgercmd.TransactionResult, error) {
	return f.applyTransaction.Handle(cmd)
}

func (f *Facade) DeleteTransaction(id string) error {
	return f.revertTransaction.Handle(ledgercmd.RevertTransactionCommand{ID: id})
}

func (f *Facade) ClearLog() error {
	return f.clearLog.Handle(ledgercmd.ClearLogCommand{})
}

func (f *Facade) Transactions(descending bool) ([]ledgerdomain.Record, error) {
	return f.listTransactions.Handle(ledgerquery.ListTransactionsQuery{Descending: descending})
}

func (f *Facade) Valuation() (*ledgerquery.ValuationReport, error) {
	return f.valuation.Handle(ledgerquery.ValuationQuery{})
}
