package views

import (
	"errors"
	"log"

	"github.com/ConteoVivo/ActaMap/middleware"
	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type usuarioPayload struct {
	IDUsuario      int64           `json:"id_usuario"`
	NombreUsuario  string          `json:"nombre_usuario"`
	Rol            string          `json:"rol"`
	RolDescripcion string          `json:"rol_descripcion"`
	Persona        *models.Persona `json:"persona"`
}

func buildUsuarioPayload(u *models.Usuario) usuarioPayload {
	payload := usuarioPayload{
		IDUsuario:     u.IDUsuario,
		NombreUsuario: u.NombreUsuario,
		Persona:       u.Persona,
	}
	if u.Rol != nil {
		payload.Rol = u.Rol.Nombre
		payload.RolDescripcion = u.Rol.Descripcion
	}
	return payload
}

// Login 校验凭据并签发JWT
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "El nombre de usuario y la contraseña son requeridos")
		return
	}

	DB := models.DB
	var usuario models.Usuario
	err := DB.Preload("Persona").Preload("Rol").
		Where("nombre_usuario = ?", req.NombreUsuario).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Unauthorized(c, "Usuario no encontrado")
			return
		}
		response.InternalError(c, "Error al iniciar sesión")
		return
	}

	if !usuario.Activo() {
		response.Unauthorized(c, "Cuenta expirada")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasena), []byte(req.Contrasena)); err != nil {
		response.Unauthorized(c, "Contraseña incorrecta")
		return
	}

	rol := ""
	if usuario.Rol != nil {
		rol = usuario.Rol.Nombre
	}
	token, err := middleware.GenerarToken(usuario.IDUsuario, usuario.NombreUsuario, rol)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		response.InternalError(c, "Error al iniciar sesión")
		return
	}

	response.Success(c, gin.H{
		"token":   token,
		"usuario": buildUsuarioPayload(&usuario),
	})
}

// Me 返回当前令牌对应的用户
func (uc *UserController) Me(c *gin.Context) {
	idUsuario := c.MustGet(middleware.CtxIDUsuario).(int64)

	DB := models.DB
	var usuario models.Usuario
	err := DB.Preload("Persona").Preload("Rol").
		Where("id_usuario = ?", idUsuario).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Usuario no encontrado")
			return
		}
		response.InternalError(c, "Error al obtener usuario")
		return
	}

	response.Success(c, buildUsuarioPayload(&usuario))
}
