package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCellApplyTransitions(t *testing.T) {
	cost := decimal.NewFromInt(2)

	tests := []struct {
		name      string
		start     int
		mode      Mode
		amount    int
		wantStock int
		wantDelta int
		wantType  EntryType
	}{
		{"add increases stock", 10, ModeAdd, 5, 15, 5, TypeAdded},
		{"cut decreases stock", 15, ModeCut, 3, 12, -3, TypeCut},
		{"cut whole stock", 3, ModeCut, 3, 0, -3, TypeCut},
		{"adjust down", 12, ModeAdjust, 7, 7, -5, TypeAdjusted},
		{"adjust up", 7, ModeAdjust, 20, 20, 13, TypeAdjusted},
		{"adjust no-op", 7, ModeAdjust, 7, 7, 0, TypeAdjusted},
		{"adjust to zero", 7, ModeAdjust, 0, 0, -7, TypeAdjusted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := Cell{Stock: tt.start, Cost: cost}
			next, delta, logType, err := cell.Apply(tt.mode, tt.amount)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if next.Stock != tt.wantStock {
				t.Fatalf("stock: expected %d got %d", tt.wantStock, next.Stock)
			}
			if delta != tt.wantDelta {
				t.Fatalf("delta: expected %d got %d", tt.wantDelta, delta)
			}
			if logType != tt.wantType {
				t.Fatalf("type: expected %s got %s", tt.wantType, logType)
			}
			if !next.Cost.Equal(cost) {
				t.Fatalf("cost must carry forward, got %s", next.Cost)
			}
		})
	}
}

func TestCellApplyCutBeyondStock(t *testing.T) {
	cell := Cell{Stock: 15, Cost: decimal.NewFromInt(2)}
	next, delta, _, err := cell.Apply(ModeCut, 50)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if next.Stock != 15 || delta != 0 {
		t.Fatalf("failed cut must leave the cell untouched, got stock=%d delta=%d", next.Stock, delta)
	}
}

func TestCellApplyUnknownMode(t *testing.T) {
	cell := Cell{Stock: 1}
	if _, _, _, err := cell.Apply(Mode("drop"), 1); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeAdd, ModeCut, ModeAdjust} {
		if !m.Valid() {
			t.Fatalf("%s should be valid", m)
		}
	}
	for _, m := range []Mode{"", "Add", "remove"} {
		if m.Valid() {
			t.Fatalf("%q should be invalid", m)
		}
	}
}
