package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"controlecompras/internal/httpx"
	"controlecompras/internal/report"
	"controlecompras/internal/services"
	"controlecompras/internal/store"
)

// ItemHandler is the presentation boundary for purchasing items. It adapts
// raw form text to the monetary utilities and the store; every failure from
// below is converted to a user-facing message here, never re-raised.
type ItemHandler struct {
	store *store.Store
	svc   *services.ItemService
	log   *logrus.Logger
}

func NewItemHandler(st *store.Store, svc *services.ItemService, log *logrus.Logger) *ItemHandler {
	return &ItemHandler{store: st, svc: svc, log: log}
}

// List returns items filtered by paid state, newest first.
// GET /itens?pago=true|false (default false: outstanding items).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	pago := false
	if q := r.URL.Query().Get("pago"); q != "" {
		b, err := strconv.ParseBool(q)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_pago_filter", nil)
			return
		}
		pago = b
	}
	items, err := h.store.ListItems(pago)
	if err != nil {
		h.fail(w, "list items", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"itens": items})
}

// Create registers a new item from form fields.
// POST /itens with quantidade, descricao, destino, valor_unitario.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", nil)
		return
	}
	item, violations, err := h.svc.Save(services.ItemInput{
		Quantidade:    r.FormValue("quantidade"),
		Descricao:     r.FormValue("descricao"),
		Destino:       r.FormValue("destino"),
		ValorUnitario: r.FormValue("valor_unitario"),
	})
	if err != nil {
		h.fail(w, "create item", err)
		return
	}
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", violations)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

// Update overwrites the editable fields of an existing item.
// POST /itens/{id} with the same form fields as Create.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", nil)
		return
	}
	item, violations, err := h.svc.Save(services.ItemInput{
		ID:            id,
		Quantidade:    r.FormValue("quantidade"),
		Descricao:     r.FormValue("descricao"),
		Destino:       r.FormValue("destino"),
		ValorUnitario: r.FormValue("valor_unitario"),
	})
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "item_not_found", nil)
		return
	}
	if err != nil {
		h.fail(w, "update item", err)
		return
	}
	if !violations.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", violations)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

// SetPaid flips the paid flag.
// POST /itens/{id}/pago with pago=true|false (default true).
func (h *ItemHandler) SetPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	pago := true
	if v := r.FormValue("pago"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_pago_value", nil)
			return
		}
		pago = b
	}
	err := h.store.SetPaid(id, pago)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "item_not_found", nil)
		return
	}
	if err != nil {
		h.fail(w, "set paid", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"id": id, "pago": pago})
}

// Delete removes an item.
// POST /itens/{id}/delete.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}
	err := h.store.DeleteItem(id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "item_not_found", nil)
		return
	}
	if err != nil {
		h.fail(w, "delete item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the item list as a spreadsheet.
// GET /itens/export?pago=true|false (default false).
func (h *ItemHandler) Export(w http.ResponseWriter, r *http.Request) {
	pago := false
	if q := r.URL.Query().Get("pago"); q != "" {
		b, err := strconv.ParseBool(q)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_pago_filter", nil)
			return
		}
		pago = b
	}
	items, err := h.store.ListItems(pago)
	if err != nil {
		h.fail(w, "export items", err)
		return
	}
	company, err := h.store.CompanyConfig()
	if err != nil {
		h.fail(w, "export items", err)
		return
	}
	f, err := report.ExportItems(company, items)
	if err != nil {
		h.fail(w, "export items", err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="itens.xlsx"`)
	if err := f.Write(w); err != nil {
		h.log.WithError(err).Warn("writing spreadsheet response")
	}
}

func (h *ItemHandler) itemID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_item_id", nil)
		return 0, false
	}
	return uint(id), true
}

func (h *ItemHandler) fail(w http.ResponseWriter, op string, err error) {
	h.log.WithError(err).Error(op)
	httpx.JSONError(w, http.StatusInternalServerError, "store_error", nil)
}
