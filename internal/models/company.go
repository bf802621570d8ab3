package models

// Company holds the business profile shown in the application header.
// The table is append-only: every save inserts a new row and reads take the
// one with the highest id, so earlier profiles stay intact as history.
type Company struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	NomeEmpresa string `gorm:"column:nome_empresa;size:255" json:"nome_empresa"`
	Endereco    string `gorm:"column:endereco;size:500" json:"endereco"`
	CNPJ        string `gorm:"column:cnpj;size:20" json:"cnpj"`
	Telefone    string `gorm:"column:telefone;size:50" json:"telefone"`
}

// TableName keeps the table name used by earlier revisions of the
// application so existing database files keep working.
func (Company) TableName() string { return "configuracao_empresa" }
