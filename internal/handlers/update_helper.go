package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// updateColumns grava só as colunas tocadas pelo PATCH. Zero linhas
// afetadas quer dizer que o registro foi apagado depois da leitura.
func updateColumns(c *gin.Context, db *gorm.DB, model any, columns []string, gone error) error {
	if len(columns) == 0 {
		return nil
	}
	cols := make([]string, 0, len(columns)+1)
	cols = append(cols, columns...)
	cols = append(cols, "updated_at")

	res := db.WithContext(c.Request.Context()).Model(model).Select(cols).Updates(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gone
	}
	return nil
}
