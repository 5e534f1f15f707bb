package views

import (
	"errors"
	"strconv"

	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type mesaItem struct {
	IDMesa           int64   `json:"id_mesa"`
	Codigo           string  `json:"codigo"`
	Descripcion      *string `json:"descripcion"`
	NumeroMesa       int     `json:"numero_mesa"`
	IDRecinto        int64   `json:"id_recinto"`
	NombreRecinto    *string `json:"nombre_recinto"`
	ActasRegistradas int     `json:"actas_registradas"`
}

// GetMesas 可按id_recinto过滤, 带每张mesa已登记的acta数量
func (uc *UserController) GetMesas(c *gin.Context) {
	query := `
		SELECT
			m.id_mesa,
			m.codigo,
			m.descripcion,
			m.numero_mesa,
			m.id_recinto,
			r.nombre AS nombre_recinto,
			COUNT(a.id_acta) AS actas_registradas
		FROM mesa m
		LEFT JOIN recinto r ON m.id_recinto = r.id_recinto
		LEFT JOIN acta a ON m.id_mesa = a.id_mesa
	`
	var args []interface{}
	if idRecinto := c.Query("id_recinto"); idRecinto != "" {
		query += " WHERE m.id_recinto = ?"
		args = append(args, idRecinto)
	}
	query += " GROUP BY m.id_mesa, m.codigo, m.descripcion, m.numero_mesa, m.id_recinto, r.nombre ORDER BY m.numero_mesa"

	var items []mesaItem
	if err := models.DB.Raw(query, args...).Scan(&items).Error; err != nil {
		response.InternalError(c, "Error al obtener mesas")
		return
	}
	response.Success(c, items)
}

func (uc *UserController) CrearMesa(c *gin.Context) {
	var req MesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}
	if req.Codigo == "" || req.NumeroMesa == 0 || req.IDRecinto == 0 {
		response.BadRequest(c, "El código, número de mesa y recinto son requeridos")
		return
	}

	var count int64
	models.DB.Model(&models.Mesa{}).Where("codigo = ?", req.Codigo).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Ya existe una mesa con ese código")
		return
	}

	mesa := models.Mesa{
		Codigo:      req.Codigo,
		Descripcion: req.Descripcion,
		NumeroMesa:  req.NumeroMesa,
		IDRecinto:   req.IDRecinto,
	}
	if err := models.DB.Create(&mesa).Error; err != nil {
		response.InternalError(c, "Error al crear mesa")
		return
	}
	response.SuccessWithMessage(c, "Mesa creada exitosamente", mesa)
}

func (uc *UserController) ActualizarMesa(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var req MesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}

	var mesa models.Mesa
	if err := models.DB.Where("id_mesa = ?", id).First(&mesa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Mesa no encontrada")
			return
		}
		response.InternalError(c, "Error al actualizar mesa")
		return
	}

	updates := map[string]interface{}{
		"codigo":      req.Codigo,
		"descripcion": req.Descripcion,
		"numero_mesa": req.NumeroMesa,
		"id_recinto":  req.IDRecinto,
	}
	if err := models.DB.Model(&mesa).Updates(updates).Error; err != nil {
		response.InternalError(c, "Error al actualizar mesa")
		return
	}
	response.SuccessWithMessage(c, "Mesa actualizada exitosamente", mesa)
}

// EliminarMesa 已有acta登记的mesa不可删除
func (uc *UserController) EliminarMesa(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var actas int64
	models.DB.Model(&models.Acta{}).Where("id_mesa = ?", id).Count(&actas)
	if actas > 0 {
		response.BadRequest(c, "No se puede eliminar la mesa porque tiene actas registradas")
		return
	}

	result := models.DB.Where("id_mesa = ?", id).Delete(&models.Mesa{})
	if result.Error != nil {
		response.InternalError(c, "Error al eliminar mesa")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Mesa no encontrada")
		return
	}
	response.SuccessWithMessage(c, "Mesa eliminada exitosamente", nil)
}

// GetFrentes 全部政治阵线, 按名称排序
func (uc *UserController) GetFrentes(c *gin.Context) {
	var frentes []models.FrentePolitico
	if err := models.DB.Order("nombre").Find(&frentes).Error; err != nil {
		response.InternalError(c, "Error al obtener frentes políticos")
		return
	}
	response.Success(c, frentes)
}
