// Package report renders the item list as a spreadsheet for sharing outside
// the application.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"controlecompras/internal/models"
	"controlecompras/internal/money"
)

const sheet = "Itens"

var headers = []string{"Quantidade", "Descrição", "Destino", "Valor Unitário", "Valor Total", "Pago", "Criado Em"}

// ExportItems builds a workbook with one row per item, preceded by the
// company header when a profile exists. The caller owns the returned file and
// must Close it.
func ExportItems(company *models.Company, items []models.Item) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetAppProps(&excelize.AppProperties{Application: "Controle de Compras"})
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	row := 1
	if company != nil {
		companyLines := [][2]string{
			{"Empresa", company.NomeEmpresa},
			{"CNPJ", company.CNPJ},
			{"Endereço", company.Endereco},
			{"Telefone", company.Telefone},
		}
		for _, line := range companyLines {
			if err := setRow(f, row, line[0], line[1]); err != nil {
				return nil, err
			}
			row++
		}
		row++ // blank separator line
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	row++

	var sum money.Amount
	for _, item := range items {
		pago := "Não"
		if item.Pago {
			pago = "Sim"
		}
		values := []any{
			item.Quantidade,
			item.Descricao,
			item.Destino,
			money.Format(item.ValorUnitario),
			money.Format(item.ValorTotal),
			pago,
			item.CriadoEm.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		sum += item.ValorTotal
		row++
	}

	if err := setRow(f, row, "Total", money.Format(sum)); err != nil {
		return nil, err
	}
	return f, nil
}

func setRow(f *excelize.File, row int, label, value string) error {
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label); err != nil {
		return err
	}
	return f.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
}
