package views

import (
	"errors"
	"strconv"

	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type rolPayload struct {
	Name        string `json:"name"`
	Descripcion string `json:"descripcion"`
}

type usuarioListItem struct {
	IDUsuario     int64           `json:"id_usuario"`
	NombreUsuario string          `json:"nombre_usuario"`
	Activo        bool            `json:"activo"`
	Persona       *models.Persona `json:"persona"`
	Roles         []rolPayload    `json:"roles"`
}

func buildUsuarioListItem(u *models.Usuario) usuarioListItem {
	item := usuarioListItem{
		IDUsuario:     u.IDUsuario,
		NombreUsuario: u.NombreUsuario,
		Activo:        u.Activo(),
		Persona:       u.Persona,
		Roles:         []rolPayload{},
	}
	if u.Rol != nil {
		item.Roles = append(item.Roles, rolPayload{Name: u.Rol.Nombre, Descripcion: u.Rol.Descripcion})
	}
	return item
}

func (uc *UserController) GetRoles(c *gin.Context) {
	var roles []models.Rol
	if err := models.DB.Order("nombre").Find(&roles).Error; err != nil {
		response.InternalError(c, "Error al obtener roles")
		return
	}
	response.Success(c, roles)
}

func (uc *UserController) GetUsuarios(c *gin.Context) {
	var usuarios []models.Usuario
	err := models.DB.Preload("Persona").Preload("Rol").
		Order("id_usuario DESC").Find(&usuarios).Error
	if err != nil {
		response.InternalError(c, "Error al obtener usuarios")
		return
	}

	items := make([]usuarioListItem, 0, len(usuarios))
	for i := range usuarios {
		items = append(items, buildUsuarioListItem(&usuarios[i]))
	}
	response.Success(c, items)
}

func (uc *UserController) GetUsuario(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID de usuario inválido")
		return
	}

	var usuario models.Usuario
	err = models.DB.Preload("Persona").Preload("Rol").
		Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Usuario no encontrado")
			return
		}
		response.InternalError(c, "Error al obtener usuario")
		return
	}

	response.Success(c, buildUsuarioListItem(&usuario))
}

// CrearUsuario persona和usuario在同一事务内创建
func (uc *UserController) CrearUsuario(c *gin.Context) {
	var req CrearUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Cuerpo de la petición inválido")
		return
	}

	if req.NombreUsuario == "" || req.Contrasena == "" || req.IDRol == 0 || req.Persona == nil {
		response.BadRequest(c, "Faltan campos requeridos")
		return
	}
	if req.Persona.Nombre == "" || req.Persona.ApellidoPaterno == "" || req.Persona.CI == "" {
		response.BadRequest(c, "Faltan datos de la persona (nombre, apellido_paterno, ci)")
		return
	}

	DB := models.DB
	var count int64
	DB.Model(&models.Usuario{}).Where("nombre_usuario = ?", req.NombreUsuario).Count(&count)
	if count > 0 {
		response.BadRequest(c, "El nombre de usuario ya existe")
		return
	}
	DB.Model(&models.Persona{}).Where("ci = ?", req.Persona.CI).Count(&count)
	if count > 0 {
		response.BadRequest(c, "El CI ya está registrado")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		response.InternalError(c, "Error al crear usuario")
		return
	}

	usuario := models.Usuario{
		NombreUsuario: req.NombreUsuario,
		Contrasena:    string(hash),
		IDRol:         req.IDRol,
	}
	err = DB.Transaction(func(tx *gorm.DB) error {
		persona := models.Persona{
			Nombre:          req.Persona.Nombre,
			ApellidoPaterno: req.Persona.ApellidoPaterno,
			ApellidoMaterno: req.Persona.ApellidoMaterno,
			CI:              req.Persona.CI,
			Celular:         req.Persona.Celular,
			Email:           req.Persona.Email,
		}
		if err := tx.Create(&persona).Error; err != nil {
			return err
		}
		usuario.IDPersona = persona.IDPersona
		return tx.Create(&usuario).Error
	})
	if err != nil {
		response.InternalError(c, "Error al crear usuario")
		return
	}

	var creado models.Usuario
	DB.Preload("Persona").Preload("Rol").
		Where("id_usuario = ?", usuario.IDUsuario).First(&creado)
	response.Created(c, "Usuario creado exitosamente", buildUsuarioPayload(&creado))
}
