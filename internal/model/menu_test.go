package model_test

import (
	"testing"

	"github.com/juanpgarcia/cine-estructurales/internal/model"
)

func TestComboPrice(t *testing.T) {
	tests := []struct {
		name string
		item model.MenuItem
		want float64
	}{
		{
			name: "leaf item returns unit price",
			item: model.NewItem("Crispetas", 6.0),
			want: 6.0,
		},
		{
			name: "empty combo returns adjustment only",
			item: model.NewCombo("Combo Vacío", 3.5),
			want: 3.5,
		},
		{
			name: "combo adds adjustment to children",
			item: model.NewCombo("Combo Individual", -2.0,
				model.NewItem("Crispetas Medianas", 6.0),
				model.NewItem("Gaseosa 16oz", 8.0),
			),
			want: 12.0,
		},
		{
			name: "nested combos recurse",
			item: model.NewCombo("Combo Familiar", -6.0,
				model.NewCombo("Combo Pareja", -4.0,
					model.NewItem("Crispetas Grandes", 9.0),
					model.NewItem("Gaseosa 16oz", 8.0),
				),
				model.NewItem("Nachos con Queso", 7.0),
			),
			want: -6.0 + (-4.0 + 9.0 + 8.0) + 7.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Price(); got != tt.want {
				t.Errorf("Price() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComboPriceRecomputes(t *testing.T) {
	combo := model.NewCombo("Combo", -1.0, model.NewItem("Crispetas", 6.0))
	if got := combo.Price(); got != 5.0 {
		t.Fatalf("Price() before AddItem = %v, want 5", got)
	}
	combo.AddItem(model.NewItem("Gaseosa", 8.0))
	if got := combo.Price(); got != 13.0 {
		t.Errorf("Price() after AddItem = %v, want 13", got)
	}
}

func TestComboDescription(t *testing.T) {
	tests := []struct {
		name string
		item model.MenuItem
		want string
	}{
		{
			name: "leaf item describes itself by name",
			item: model.NewItem("Crispetas Medianas", 6.0),
			want: "Crispetas Medianas",
		},
		{
			name: "empty combo is marked vacío",
			item: model.NewCombo("Combo Sorpresa", -2.0),
			want: "Combo Sorpresa (vacío)",
		},
		{
			name: "negative adjustment in parentheses",
			item: model.NewCombo("Combo Individual", -2.0,
				model.NewItem("Crispetas Medianas", 6.0),
				model.NewItem("Gaseosa 16oz", 8.0),
			),
			want: "Combo Individual (-2)[Crispetas Medianas, Gaseosa 16oz]",
		},
		{
			name: "positive adjustment keeps explicit sign",
			item: model.NewCombo("Combo Premium", 1.5,
				model.NewItem("Nachos", 7.0),
			),
			want: "Combo Premium (+1.5)[Nachos]",
		},
		{
			name: "zero adjustment omits parenthetical",
			item: model.NewCombo("Combo Neutro", 0,
				model.NewItem("Gaseosa 16oz", 8.0),
			),
			want: "Combo Neutro[Gaseosa 16oz]",
		},
		{
			name: "nested combo description recurses",
			item: model.NewCombo("Combo Familiar", -6.0,
				model.NewCombo("Combo Pareja", -4.0,
					model.NewItem("Crispetas Grandes", 9.0),
				),
				model.NewItem("Nachos con Queso", 7.0),
			),
			want: "Combo Familiar (-6)[Combo Pareja (-4)[Crispetas Grandes], Nachos con Queso]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComboAddItemPreservesOrder(t *testing.T) {
	combo := model.NewCombo("Combo", 0)
	combo.AddItem(model.NewItem("Primero", 1))
	combo.AddItem(model.NewItem("Segundo", 2))
	combo.AddItem(model.NewItem("Primero", 1)) // duplicates are allowed

	want := "Combo[Primero, Segundo, Primero]"
	if got := combo.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}
