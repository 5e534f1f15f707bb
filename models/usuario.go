package models

import "time"

type Persona struct {
	IDPersona       int64   `gorm:"column:id_persona;primaryKey;autoIncrement" json:"id_persona"`
	Nombre          string  `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	ApellidoPaterno string  `gorm:"column:apellido_paterno;type:varchar(100);not null" json:"apellido_paterno"`
	ApellidoMaterno *string `gorm:"column:apellido_materno;type:varchar(100)" json:"apellido_materno"`
	CI              string  `gorm:"column:ci;type:varchar(20);uniqueIndex;not null" json:"ci"`
	Celular         *string `gorm:"column:celular;type:varchar(20)" json:"celular"`
	Email           *string `gorm:"column:email;type:varchar(255)" json:"email"`
}

func (Persona) TableName() string {
	return "persona"
}

type Rol struct {
	IDRol       int64  `gorm:"column:id_rol;primaryKey;autoIncrement" json:"id_rol"`
	Nombre      string `gorm:"column:nombre;type:varchar(50);not null" json:"nombre"`
	Descripcion string `gorm:"column:descripcion;type:varchar(255)" json:"descripcion"`
}

func (Rol) TableName() string {
	return "rol"
}

type Usuario struct {
	IDUsuario     int64      `gorm:"column:id_usuario;primaryKey;autoIncrement" json:"id_usuario"`
	NombreUsuario string     `gorm:"column:nombre_usuario;type:varchar(50);uniqueIndex;not null" json:"nombre_usuario"`
	Contrasena    string     `gorm:"column:contrasena;type:varchar(255);not null" json:"-"`
	IDRol         int64      `gorm:"column:id_rol" json:"id_rol"`
	IDPersona     int64      `gorm:"column:id_persona" json:"id_persona"`
	FechaFin      *time.Time `gorm:"column:fecha_fin" json:"fecha_fin"`

	Rol     *Rol     `gorm:"foreignKey:IDRol;references:IDRol" json:"-"`
	Persona *Persona `gorm:"foreignKey:IDPersona;references:IDPersona" json:"-"`
}

func (Usuario) TableName() string {
	return "usuario"
}

// Activo 账户是否有效: fecha_fin 为空或在未来
func (u *Usuario) Activo() bool {
	return u.FechaFin == nil || u.FechaFin.After(time.Now())
}
