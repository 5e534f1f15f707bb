package views

import (
	"errors"
	"strconv"

	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type recintoItem struct {
	IDRecinto        int64   `json:"id_recinto"`
	Nombre           string  `json:"nombre"`
	Direccion        *string `json:"direccion"`
	IDGeografico     int64   `json:"id_geografico"`
	NombreGeografico *string `json:"nombre_geografico"`
	CantidadMesas    int     `json:"cantidad_mesas"`
}

// GetRecintos 可按id_geografico过滤, 带每个recinto的mesa数量
func (uc *UserController) GetRecintos(c *gin.Context) {
	query := `
		SELECT
			r.id_recinto,
			r.nombre,
			r.direccion,
			r.id_geografico,
			g.nombre AS nombre_geografico,
			COUNT(m.id_mesa) AS cantidad_mesas
		FROM recinto r
		LEFT JOIN geografico g ON r.id_geografico = g.id_geografico
		LEFT JOIN mesa m ON r.id_recinto = m.id_recinto
	`
	var args []interface{}
	if idGeografico := c.Query("id_geografico"); idGeografico != "" {
		query += " WHERE r.id_geografico = ?"
		args = append(args, idGeografico)
	}
	query += " GROUP BY r.id_recinto, r.nombre, r.direccion, r.id_geografico, g.nombre ORDER BY r.nombre"

	var items []recintoItem
	if err := models.DB.Raw(query, args...).Scan(&items).Error; err != nil {
		response.InternalError(c, "Error al obtener recintos")
		return
	}
	response.Success(c, items)
}

func (uc *UserController) CrearRecinto(c *gin.Context) {
	var req RecintoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}
	if req.Nombre == "" || req.IDGeografico == 0 {
		response.BadRequest(c, "El nombre y el distrito son requeridos")
		return
	}

	recinto := models.Recinto{
		Nombre:       req.Nombre,
		Direccion:    req.Direccion,
		IDGeografico: req.IDGeografico,
	}
	if err := models.DB.Create(&recinto).Error; err != nil {
		response.InternalError(c, "Error al crear recinto")
		return
	}
	response.SuccessWithMessage(c, "Recinto creado exitosamente", recinto)
}

func (uc *UserController) ActualizarRecinto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var req RecintoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}

	var recinto models.Recinto
	if err := models.DB.Where("id_recinto = ?", id).First(&recinto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Recinto no encontrado")
			return
		}
		response.InternalError(c, "Error al actualizar recinto")
		return
	}

	updates := map[string]interface{}{
		"nombre":        req.Nombre,
		"direccion":     req.Direccion,
		"id_geografico": req.IDGeografico,
	}
	if err := models.DB.Model(&recinto).Updates(updates).Error; err != nil {
		response.InternalError(c, "Error al actualizar recinto")
		return
	}
	response.SuccessWithMessage(c, "Recinto actualizado exitosamente", recinto)
}

func (uc *UserController) EliminarRecinto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	result := models.DB.Where("id_recinto = ?", id).Delete(&models.Recinto{})
	if result.Error != nil {
		response.InternalError(c, "Error al eliminar recinto")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Recinto no encontrado")
		return
	}
	response.SuccessWithMessage(c, "Recinto eliminado exitosamente", nil)
}
