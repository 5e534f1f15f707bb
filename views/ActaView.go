package views

import (
	"encoding/json"
	"strconv"

	"github.com/ConteoVivo/ActaMap/config"
	"github.com/ConteoVivo/ActaMap/middleware"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/ConteoVivo/ActaMap/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActaHandler acta登记/编辑/查询的HTTP适配层, 业务逻辑在services
type ActaHandler struct {
	actas      *services.ActaService
	resultados *services.ResultadosService
	archivos   *services.ArchivoService
}

func NewActaHandler(db *gorm.DB) *ActaHandler {
	return &ActaHandler{
		actas:      services.NewActaService(db),
		resultados: services.NewResultadosService(db),
		archivos:   services.NewArchivoService(config.UploadDir),
	}
}

func parseVotosForm(c *gin.Context, field string) ([]services.VotoEntrada, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return nil, nil
	}
	var votos []services.VotoEntrada
	if err := json.Unmarshal([]byte(raw), &votos); err != nil {
		return nil, err
	}
	return votos, nil
}

func formInt(c *gin.Context, field string) (int, error) {
	raw := c.PostForm(field)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// RegistrarActa multipart表单: acta数据 + 可选扫描件.
// 附件在事务开始前校验并落盘, 之后acta和voto行在一个事务内写入
func (h *ActaHandler) RegistrarActa(c *gin.Context) {
	idUsuario := c.MustGet(middleware.CtxIDUsuario).(int64)

	idMesa, err1 := formInt(c, "id_mesa")
	idTipoEleccion, err2 := formInt(c, "id_tipo_eleccion")
	votosNulos, err3 := formInt(c, "votos_nulos")
	votosBlancos, err4 := formInt(c, "votos_blancos")
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		response.BadRequest(c, "Campos numéricos inválidos")
		return
	}

	votosAlcalde, err := parseVotosForm(c, "votos_alcalde")
	if err != nil {
		response.BadRequest(c, "El formato de votos_alcalde es inválido")
		return
	}
	votosConcejal, err := parseVotosForm(c, "votos_concejal")
	if err != nil {
		response.BadRequest(c, "El formato de votos_concejal es inválido")
		return
	}

	var imagenURL *string
	if file, err := c.FormFile("imagen_acta"); err == nil {
		url, err := h.archivos.GuardarImagenActa(file)
		if err != nil {
			renderServiceError(c, err)
			return
		}
		imagenURL = &url
	}

	var observaciones *string
	if obs := c.PostForm("observaciones"); obs != "" {
		observaciones = &obs
	}

	resultado, err := h.actas.Registrar(&services.RegistroActa{
		IDMesa:         int64(idMesa),
		IDTipoEleccion: int64(idTipoEleccion),
		IDUsuario:      idUsuario,
		VotosNulos:     votosNulos,
		VotosBlancos:   votosBlancos,
		Observaciones:  observaciones,
		VotosAlcalde:   votosAlcalde,
		VotosConcejal:  votosConcejal,
		ImagenURL:      imagenURL,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Acta registrada exitosamente", resultado)
}

// EditarActa 全量替换载荷, mesa和选举类型不可变
func (h *ActaHandler) EditarActa(c *gin.Context) {
	idActa, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID de acta inválido")
		return
	}

	var req EditarActaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}

	resultado, err := h.actas.Editar(idActa, &services.EdicionActa{
		VotosNulos:    req.VotosNulos,
		VotosBlancos:  req.VotosBlancos,
		Observaciones: req.Observaciones,
		Estado:        req.Estado,
		VotosAlcalde:  req.VotosAlcalde,
		VotosConcejal: req.VotosConcejal,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Acta editada exitosamente", resultado)
}

func (h *ActaHandler) GetVotos(c *gin.Context) {
	actas, err := h.resultados.ListarActas()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, actas)
}

func (h *ActaHandler) GetActa(c *gin.Context) {
	idActa, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID de acta inválido")
		return
	}

	detalle, err := h.resultados.DetalleActa(idActa)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, detalle)
}

func (h *ActaHandler) ResultadosVivo(c *gin.Context) {
	resultados, err := h.resultados.ResultadosVivo()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	response.Success(c, resultados)
}
