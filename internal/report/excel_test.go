package report

import (
	"testing"
	"time"

	"controlecompras/internal/models"
)

func TestExportItems(t *testing.T) {
	company := &models.Company{NomeEmpresa: "Obra Fácil Ltda", Endereco: "Rua A, 10", CNPJ: "00.000.000/0001-00", Telefone: "11 1111-1111"}
	items := []models.Item{
		{ID: 2, Quantidade: 2, Descricao: "Cabo", Destino: "Obra A", ValorUnitario: 1050, ValorTotal: 2100, CriadoEm: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
		{ID: 1, Quantidade: 1, Descricao: "Areia", Destino: "Obra B", ValorUnitario: 500, ValorTotal: 500, Pago: true, CriadoEm: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
	}

	f, err := ExportItems(company, items)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		t.Helper()
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			t.Fatalf("get %s: %v", cell, err)
		}
		return v
	}

	if get("B1") != "Obra Fácil Ltda" {
		t.Errorf("B1 = %q", get("B1"))
	}
	// Company block is 4 rows plus a blank one; headers land on row 6.
	if get("A6") != "Quantidade" || get("D6") != "Valor Unitário" {
		t.Errorf("header row wrong: %q, %q", get("A6"), get("D6"))
	}
	if get("B7") != "Cabo" || get("E7") != "R$ 21,00" || get("F7") != "Não" {
		t.Errorf("first item row wrong: %q %q %q", get("B7"), get("E7"), get("F7"))
	}
	if get("B8") != "Areia" || get("F8") != "Sim" {
		t.Errorf("second item row wrong: %q %q", get("B8"), get("F8"))
	}
	if get("A9") != "Total" || get("B9") != "R$ 26,00" {
		t.Errorf("total row wrong: %q %q", get("A9"), get("B9"))
	}
}

func TestExportItemsWithoutCompany(t *testing.T) {
	f, err := ExportItems(nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer f.Close()

	v, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("get A1: %v", err)
	}
	if v != "Quantidade" {
		t.Errorf("A1 = %q, want header row at the top", v)
	}
	total, err := f.GetCellValue(sheet, "B2")
	if err != nil {
		t.Fatalf("get B2: %v", err)
	}
	if total != "R$ 0,00" {
		t.Errorf("empty export total = %q, want R$ 0,00", total)
	}
}
