package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies a domain failure independently of transport.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindNotFound
	KindCollision
	KindProtectedDefault
	KindInsufficientStock
	KindSizeNotFound
	KindItemNotFoundInInventory
	KindStorageFailure
)

// Message keys understood by the presentation layer for localization.
const (
	KeyInvalidData              = "error_invalid_data"
	KeyNameEmpty                = "error_name_empty"
	KeyCategoryNameEmpty        = "error_category_name_empty"
	KeyCategoryDeleteDefault    = "error_category_delete_default"
	KeyCategoryNotFound         = "error_category_not_found"
	KeyBarcodeRequired          = "error_barcode_required"
	KeyBarcodeCollision         = "error_barcode_collision"
	KeyProductNotFound          = "error_product_not_found"
	KeyItemNotFound             = "error_item_not_found"
	KeySizeNotFound             = "error_size_not_found"
	KeyNotEnoughStock           = "error_not_enough_stock"
	KeyDeleteTransaction        = "error_delete_transaction"
	KeyItemNotFoundInInventory  = "error_item_not_found_in_inventory"
	KeyStorageFailure           = "error_storage_failure"
)

// Error is a domain failure carrying a machine-readable message key plus
// optional structured context, so the client can localize it.
type Error struct {
	Kind    Kind           `json:"-"`
	Key     string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
	Err     error          `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return e.Key
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// WithContext adds a single context value to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// HTTPStatus maps the error kind to a transport status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput, KindInsufficientStock:
		return http.StatusBadRequest
	case KindNotFound, KindSizeNotFound:
		return http.StatusNotFound
	case KindProtectedDefault:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error with the given kind and message key.
func New(kind Kind, key string) *Error {
	return &Error{Kind: kind, Key: key}
}

// InvalidInput creates a validation error
func InvalidInput(key string) *Error {
	return New(KindInvalidInput, key)
}

// NotFound creates a not found error
func NotFound(key string) *Error {
	return New(KindNotFound, key)
}

// Collision reports a generated identifier that is already in use.
func Collision(key string) *Error {
	return New(KindCollision, key)
}

// ProtectedDefault reports an attempt to mutate the reserved default category.
func ProtectedDefault() *Error {
	return New(KindProtectedDefault, KeyCategoryDeleteDefault)
}

// InsufficientStock reports a cut that exceeds the current stock level.
func InsufficientStock(item string, stock int) *Error {
	return New(KindInsufficientStock, KeyNotEnoughStock).
		WithContext("item", item).
		WithContext("stock", stock)
}

// SizeNotFound reports a cut against a size cell that does not exist yet.
func SizeNotFound(size, item string) *Error {
	return New(KindSizeNotFound, KeySizeNotFound).
		WithContext("size", size).
		WithContext("item", item)
}

// ItemNotFound reports a barcode with no inventory cell set.
func ItemNotFound(barcode string) *Error {
	return New(KindNotFound, KeyItemNotFound).WithContext("itemCode", barcode)
}

// ItemNotFoundInInventory reports a revert whose target cell is gone.
func ItemNotFoundInInventory() *Error {
	return New(KindItemNotFoundInInventory, KeyItemNotFoundInInventory)
}

// Storage wraps a low-level read/write fault so it never leaks raw to a caller.
func Storage(err error) *Error {
	return &Error{Kind: KindStorageFailure, Key: KeyStorageFailure, Err: err}
}
