package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"invalid input", InvalidInput(KeyInvalidData), http.StatusBadRequest},
		{"insufficient stock", InsufficientStock("Shirt (M)", 3), http.StatusBadRequest},
		{"not found", NotFound(KeyProductNotFound), http.StatusNotFound},
		{"size not found", SizeNotFound("M", "Shirt"), http.StatusNotFound},
		{"protected default", ProtectedDefault(), http.StatusForbidden},
		{"collision", Collision(KeyBarcodeCollision), http.StatusInternalServerError},
		{"item gone on revert", ItemNotFoundInInventory(), http.StatusInternalServerError},
		{"storage", Storage(errors.New("disk full")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Fatalf("expected %d got %d", tt.want, got)
			}
		})
	}
}

func TestInsufficientStockContext(t *testing.T) {
	err := InsufficientStock("Shirt (M)", 15)
	if err.Key != KeyNotEnoughStock {
		t.Fatalf("unexpected key %q", err.Key)
	}
	if err.Context["item"] != "Shirt (M)" || err.Context["stock"] != 15 {
		t.Fatalf("unexpected context %v", err.Context)
	}
}

func TestErrorsAsThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", ItemNotFound("123456780001"))

	var ae *Error
	if !errors.As(wrapped, &ae) {
		t.Fatalf("expected errors.As to find *Error")
	}
	if ae.Kind != KindNotFound || ae.Context["itemCode"] != "123456780001" {
		t.Fatalf("unexpected error %v", ae)
	}
}

func TestStorageWrapsCause(t *testing.T) {
	cause := errors.New("read-only file system")
	err := Storage(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Key != KeyStorageFailure {
		t.Fatalf("unexpected key %q", err.Key)
	}
}
