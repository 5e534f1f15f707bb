package views

import (
	"errors"
	"strconv"

	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type geograficoItem struct {
	IDGeografico   int64   `json:"id_geografico"`
	Nombre         string  `json:"nombre"`
	Codigo         *string `json:"codigo"`
	Ubicacion      *string `json:"ubicacion"`
	Tipo           string  `json:"tipo"`
	FkIDGeografico *int64  `json:"fk_id_geografico"`
	NombrePadre    *string `json:"nombre_padre"`
}

const geograficoSelect = `
	SELECT
		g.id_geografico,
		g.nombre,
		g.codigo,
		g.ubicacion,
		g.tipo,
		g.fk_id_geografico,
		padre.nombre AS nombre_padre
	FROM geografico g
	LEFT JOIN geografico padre ON g.fk_id_geografico = padre.id_geografico
`

func (uc *UserController) GetGeograficos(c *gin.Context) {
	var items []geograficoItem
	err := models.DB.Raw(geograficoSelect + " ORDER BY g.tipo, g.nombre").Scan(&items).Error
	if err != nil {
		response.InternalError(c, "Error al obtener registros geográficos")
		return
	}
	response.Success(c, items)
}

func (uc *UserController) GetGeografico(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var item geograficoItem
	err = models.DB.Raw(geograficoSelect+" WHERE g.id_geografico = ?", id).Scan(&item).Error
	if err != nil {
		response.InternalError(c, "Error al obtener registro geográfico")
		return
	}
	if item.IDGeografico == 0 {
		response.NotFound(c, "Registro geográfico no encontrado")
		return
	}
	response.Success(c, item)
}

// GetTipos 地理层级的去重类型列表
func (uc *UserController) GetTipos(c *gin.Context) {
	var tipos []string
	err := models.DB.Model(&models.Geografico{}).
		Distinct("tipo").Where("tipo IS NOT NULL").Order("tipo").Pluck("tipo", &tipos).Error
	if err != nil {
		response.InternalError(c, "Error al obtener tipos")
		return
	}
	response.Success(c, tipos)
}

// GetPadres 可作为上级的节点列表
func (uc *UserController) GetPadres(c *gin.Context) {
	var padres []models.Geografico
	err := models.DB.Select("id_geografico", "nombre", "tipo").
		Order("tipo, nombre").Find(&padres).Error
	if err != nil {
		response.InternalError(c, "Error al obtener padres")
		return
	}
	response.Success(c, padres)
}

func (uc *UserController) CrearGeografico(c *gin.Context) {
	var req GeograficoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}
	if req.Nombre == "" || req.Tipo == "" {
		response.BadRequest(c, "El nombre y tipo son requeridos")
		return
	}

	var count int64
	models.DB.Model(&models.Geografico{}).
		Where("nombre = ? AND tipo = ?", req.Nombre, req.Tipo).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Ya existe un registro con ese nombre y tipo")
		return
	}

	geo := models.Geografico{
		Nombre:         req.Nombre,
		Codigo:         req.Codigo,
		Ubicacion:      req.Ubicacion,
		Tipo:           req.Tipo,
		FkIDGeografico: req.FkIDGeografico,
	}
	if err := models.DB.Create(&geo).Error; err != nil {
		response.InternalError(c, "Error al crear registro geográfico")
		return
	}
	response.Created(c, "Registro geográfico creado exitosamente", geo)
}

func (uc *UserController) ActualizarGeografico(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var req GeograficoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}
	if req.Nombre == "" || req.Tipo == "" {
		response.BadRequest(c, "El nombre y tipo son requeridos")
		return
	}

	var geo models.Geografico
	if err := models.DB.Where("id_geografico = ?", id).First(&geo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Registro geográfico no encontrado")
			return
		}
		response.InternalError(c, "Error al actualizar registro geográfico")
		return
	}

	updates := map[string]interface{}{
		"nombre":           req.Nombre,
		"codigo":           req.Codigo,
		"ubicacion":        req.Ubicacion,
		"tipo":             req.Tipo,
		"fk_id_geografico": req.FkIDGeografico,
	}
	if err := models.DB.Model(&geo).Updates(updates).Error; err != nil {
		response.InternalError(c, "Error al actualizar registro geográfico")
		return
	}
	response.SuccessWithMessage(c, "Registro geográfico actualizado exitosamente", geo)
}

// EliminarGeografico 有下级引用时拒绝删除
func (uc *UserController) EliminarGeografico(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID inválido")
		return
	}

	var hijos int64
	models.DB.Model(&models.Geografico{}).Where("fk_id_geografico = ?", id).Count(&hijos)
	if hijos > 0 {
		response.BadRequest(c, "No se puede eliminar porque tiene registros dependientes")
		return
	}

	result := models.DB.Where("id_geografico = ?", id).Delete(&models.Geografico{})
	if result.Error != nil {
		response.InternalError(c, "Error al eliminar registro geográfico")
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c, "Registro geográfico no encontrado")
		return
	}
	response.SuccessWithMessage(c, "Registro geográfico eliminado exitosamente", nil)
}
