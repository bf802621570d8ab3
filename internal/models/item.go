package models

import (
	"time"

	"controlecompras/internal/money"
)

// Item is one purchasing line: a quantity of something bought for a
// destination at a unit price. Amounts are integer centavos; the legacy
// schema stored REAL columns, which drifted, so the columns now carry exact
// minor units.
type Item struct {
	ID            uint         `gorm:"primaryKey;column:id" json:"id"`
	Quantidade    int          `gorm:"column:quantidade;not null" json:"quantidade"`
	Descricao     string       `gorm:"column:descricao;size:255;not null" json:"descricao"`
	Destino       string       `gorm:"column:destino;size:255;not null" json:"destino"`
	ValorUnitario money.Amount `gorm:"column:valor_unitario;not null" json:"valor_unitario"`
	ValorTotal    money.Amount `gorm:"column:valor_total;not null" json:"valor_total"`
	Pago          bool         `gorm:"column:pago;not null;default:false" json:"pago"`
	CriadoEm      time.Time    `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
}

// TableName keeps the table name used by earlier revisions of the
// application.
func (Item) TableName() string { return "itens" }

// Recalculate sets ValorTotal from Quantidade and ValorUnitario. Every write
// path must call it so the persisted total can never drift from its factors.
func (i *Item) Recalculate() error {
	total, err := money.Total(i.Quantidade, i.ValorUnitario)
	if err != nil {
		return err
	}
	i.ValorTotal = total
	return nil
}
