package handlers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"controlecompras/internal/httpx"
	"controlecompras/internal/logo"
	"controlecompras/internal/models"
	"controlecompras/internal/store"
	"controlecompras/internal/validation"
)

// CompanyHandler manages the single company profile and its logo file.
type CompanyHandler struct {
	store   *store.Store
	log     *logrus.Logger
	dataDir string
}

func NewCompanyHandler(st *store.Store, log *logrus.Logger, dataDir string) *CompanyHandler {
	return &CompanyHandler{store: st, log: log, dataDir: dataDir}
}

// Get returns the effective profile, the latest saved one.
// GET /empresa.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.store.CompanyConfig()
	if err != nil {
		h.log.WithError(err).Error("load company config")
		httpx.JSONError(w, http.StatusInternalServerError, "store_error", nil)
		return
	}
	if company == nil {
		httpx.JSONError(w, http.StatusNotFound, "company_not_configured", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, company)
}

// Save stores a new profile revision; all four text fields are required.
// Accepts an optional "logo" file part when posted as multipart.
// POST /empresa.
func (h *CompanyHandler) Save(w http.ResponseWriter, r *http.Request) {
	// Multipart when a logo comes along, urlencoded otherwise.
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "bad_request", nil)
			return
		}
	} else if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", nil)
		return
	}

	company := models.Company{
		NomeEmpresa: strings.TrimSpace(r.FormValue("nome_empresa")),
		Endereco:    strings.TrimSpace(r.FormValue("endereco")),
		CNPJ:        strings.TrimSpace(r.FormValue("cnpj")),
		Telefone:    strings.TrimSpace(r.FormValue("telefone")),
	}

	v := validation.Violations{}
	validation.Required("nome_empresa", company.NomeEmpresa, v)
	validation.Required("endereco", company.Endereco, v)
	validation.Required("cnpj", company.CNPJ, v)
	validation.Required("telefone", company.Telefone, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	if err := h.store.SaveCompanyConfig(&company); err != nil {
		h.log.WithError(err).Error("save company config")
		httpx.JSONError(w, http.StatusInternalServerError, "store_error", nil)
		return
	}

	// The logo is a side-effect file, not a column; a failure here does not
	// undo the profile save.
	if file, _, err := r.FormFile("logo"); err == nil {
		defer file.Close()
		if err := logo.Save(file, h.dataDir); err != nil {
			h.log.WithError(err).Warn("save logo")
			httpx.JSONError(w, http.StatusUnprocessableEntity, "invalid_logo", nil)
			return
		}
	}

	httpx.JSON(w, http.StatusCreated, company)
}

// Logo serves the current logo file.
// GET /empresa/logo.
func (h *CompanyHandler) Logo(w http.ResponseWriter, r *http.Request) {
	if !logo.Exists(h.dataDir) {
		httpx.JSONError(w, http.StatusNotFound, "logo_not_found", nil)
		return
	}
	http.ServeFile(w, r, logo.Path(h.dataDir))
}
