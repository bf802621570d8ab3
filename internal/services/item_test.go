package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"controlecompras/internal/models"
	"controlecompras/internal/money"
	"controlecompras/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Company{}, &models.Item{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newService(t *testing.T) (*ItemService, *store.Store) {
	t.Helper()
	st := store.New(setupTestDB(t))
	return NewItemService(st, money.DefaultMax), st
}

func TestSaveNewItem(t *testing.T) {
	svc, st := newService(t)

	item, violations, err := svc.Save(ItemInput{
		Quantidade:    "2",
		Descricao:     "Cabo",
		Destino:       "Obra A",
		ValorUnitario: "R$ 10,50",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if item.ID == 0 {
		t.Fatal("expected id assigned")
	}
	if item.ValorUnitario != 1050 || item.ValorTotal != 2100 {
		t.Fatalf("amounts = %d / %d, want 1050 / 2100", item.ValorUnitario, item.ValorTotal)
	}

	items, err := st.ListItems(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ValorTotal != 2100 {
		t.Fatalf("persisted item wrong: %+v", items)
	}
}

func TestSaveUpdatesExistingItem(t *testing.T) {
	svc, st := newService(t)

	created, _, err := svc.Save(ItemInput{Quantidade: "1", Descricao: "Areia", Destino: "Obra", ValorUnitario: "5,00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, violations, err := svc.Save(ItemInput{
		ID:            created.ID,
		Quantidade:    "4",
		Descricao:     "Areia fina",
		Destino:       "Obra B",
		ValorUnitario: "6,25",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if updated.ValorTotal != 2500 {
		t.Fatalf("valor_total = %d, want 2500", updated.ValorTotal)
	}

	items, err := st.ListItems(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Descricao != "Areia fina" || items[0].ValorTotal != 2500 {
		t.Fatalf("persisted item wrong: %+v", items[0])
	}
}

func TestSaveUpdateMissingItem(t *testing.T) {
	svc, _ := newService(t)

	_, violations, err := svc.Save(ItemInput{
		ID:            4242,
		Quantidade:    "1",
		Descricao:     "Fantasma",
		Destino:       "Nada",
		ValorUnitario: "1,00",
	})
	if violations != nil && !violations.Empty() {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestSaveValidation(t *testing.T) {
	svc, st := newService(t)

	tests := []struct {
		name  string
		in    ItemInput
		field string
	}{
		{"empty description", ItemInput{Quantidade: "1", Destino: "Obra", ValorUnitario: "1,00"}, "descricao"},
		{"empty destination", ItemInput{Quantidade: "1", Descricao: "Cabo", ValorUnitario: "1,00"}, "destino"},
		{"zero quantity", ItemInput{Quantidade: "0", Descricao: "Cabo", Destino: "Obra", ValorUnitario: "1,00"}, "quantidade"},
		{"negative quantity", ItemInput{Quantidade: "-3", Descricao: "Cabo", Destino: "Obra", ValorUnitario: "1,00"}, "quantidade"},
		{"quantity not a number", ItemInput{Quantidade: "x", Descricao: "Cabo", Destino: "Obra", ValorUnitario: "1,00"}, "quantidade"},
		{"empty amount", ItemInput{Quantidade: "1", Descricao: "Cabo", Destino: "Obra", ValorUnitario: ""}, "valor_unitario"},
		{"malformed amount", ItemInput{Quantidade: "1", Descricao: "Cabo", Destino: "Obra", ValorUnitario: "10,5,5"}, "valor_unitario"},
		{"amount above ceiling", ItemInput{Quantidade: "1", Descricao: "Cabo", Destino: "Obra", ValorUnitario: "100.000,01"}, "valor_unitario"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, violations, err := svc.Save(tt.in)
			if err != nil {
				t.Fatalf("save: %v", err)
			}
			if item != nil {
				t.Fatal("blocked save must not return an item")
			}
			if _, ok := violations[tt.field]; !ok {
				t.Fatalf("expected violation on %q, got %v", tt.field, violations)
			}
		})
	}

	// None of the blocked saves may have reached the store.
	items, err := st.ListItems(false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty store, got %d items", len(items))
	}
}
