package services

import (
	"strconv"
	"strings"

	"controlecompras/internal/models"
	"controlecompras/internal/money"
	"controlecompras/internal/store"
	"controlecompras/internal/validation"
)

// ItemInput carries the raw text of the registration/edit form. Parsing and
// validation happen here, at submit time; a failure blocks the save and comes
// back as field violations instead of reaching the store.
type ItemInput struct {
	ID            uint   // zero for a new item
	Quantidade    string
	Descricao     string
	Destino       string
	ValorUnitario string // as typed, e.g. "R$ 1.234,56" or "1234,56"
}

type ItemService struct {
	store       *store.Store
	maxUnitario money.Amount
}

func NewItemService(st *store.Store, maxUnitario money.Amount) *ItemService {
	if maxUnitario <= 0 {
		maxUnitario = money.DefaultMax
	}
	return &ItemService{store: st, maxUnitario: maxUnitario}
}

// Save validates the form input, computes the line total in centavos and
// inserts or updates the item. Violations are returned with a nil error; the
// error return is reserved for store failures.
func (s *ItemService) Save(in ItemInput) (*models.Item, validation.Violations, error) {
	v := validation.Violations{}
	validation.Required("descricao", in.Descricao, v)
	validation.Required("destino", in.Destino, v)

	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantidade))
	if err != nil {
		validation.Invalid("quantidade", "not_a_number", v)
	} else {
		validation.MinInt("quantidade", qty, 1, v)
	}

	unit, err := money.ParseLimit(in.ValorUnitario, s.maxUnitario)
	if err != nil {
		validation.Invalid("valor_unitario", "invalid_amount", v)
	}

	if !v.Empty() {
		return nil, v, nil
	}

	item := &models.Item{
		ID:            in.ID,
		Quantidade:    qty,
		Descricao:     strings.TrimSpace(in.Descricao),
		Destino:       strings.TrimSpace(in.Destino),
		ValorUnitario: unit,
	}
	if err := item.Recalculate(); err != nil {
		// quantity and amount were just validated; a failure here is a bug
		return nil, nil, err
	}

	if item.ID == 0 {
		err = s.store.InsertItem(item)
	} else {
		err = s.store.UpdateItem(item)
	}
	if err != nil {
		return nil, nil, err
	}
	return item, nil, nil
}
