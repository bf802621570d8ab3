// Package store is the persistence gateway over the two application tables.
// Every mutation is a single-row write; no operation spans both entities.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"controlecompras/internal/models"
)

// ErrNotFound reports a mutation that targeted an id with no row behind it.
// The store is left unchanged in that case.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CompanyConfig returns the effective company profile: the most recently
// inserted row, or nil when none was ever saved.
func (s *Store) CompanyConfig() (*models.Company, error) {
	var c models.Company
	err := s.db.Order("id DESC").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load company config: %w", err)
	}
	return &c, nil
}

// SaveCompanyConfig always inserts a new row; reads take the latest one.
func (s *Store) SaveCompanyConfig(c *models.Company) error {
	c.ID = 0
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("save company config: %w", err)
	}
	return nil
}

// ListItems returns items filtered by paid state, newest first. Rows created
// in the same instant fall back to insertion order.
func (s *Store) ListItems(pago bool) ([]models.Item, error) {
	var items []models.Item
	err := s.db.Where("pago = ?", pago).
		Order("criado_em DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// InsertItem creates the row, letting the store assign id and criado_em.
// New items are always unpaid.
func (s *Store) InsertItem(item *models.Item) error {
	item.ID = 0
	item.Pago = false
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// UpdateItem overwrites the editable columns of the row matching item.ID.
// Pago and criado_em are deliberately not touched here.
func (s *Store) UpdateItem(item *models.Item) error {
	res := s.db.Model(&models.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"quantidade":     item.Quantidade,
			"descricao":      item.Descricao,
			"destino":        item.Destino,
			"valor_unitario": item.ValorUnitario,
			"valor_total":    item.ValorTotal,
		})
	if res.Error != nil {
		return fmt.Errorf("update item %d: %w", item.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetPaid flips the paid flag of a single item.
func (s *Store) SetPaid(id uint, pago bool) error {
	res := s.db.Model(&models.Item{}).Where("id = ?", id).Update("pago", pago)
	if res.Error != nil {
		return fmt.Errorf("set paid %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes a single item.
func (s *Store) DeleteItem(id uint) error {
	res := s.db.Delete(&models.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
