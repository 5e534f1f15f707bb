package models

import "time"

// Estados del acta
const (
	EstadoRegistrada = "registrada"
	EstadoValidada   = "validada"
	EstadoRechazada  = "rechazada"
	EstadoPendiente  = "pendiente"
)

// Cargos en disputa
const (
	CargoAlcalde  = "alcalde"
	CargoConcejal = "concejal"
)

type Acta struct {
	IDActa             int64      `gorm:"column:id_acta;primaryKey;autoIncrement" json:"id_acta"`
	IDMesa             int64      `gorm:"column:id_mesa;not null" json:"id_mesa"`
	IDTipoEleccion     int64      `gorm:"column:id_tipo_eleccion;not null" json:"id_tipo_eleccion"`
	IDUsuario          int64      `gorm:"column:id_usuario;not null" json:"id_usuario"`
	VotosTotales       int        `gorm:"column:votos_totales;not null" json:"votos_totales"`
	VotosValidos       int        `gorm:"column:votos_validos;not null" json:"votos_validos"`
	VotosNulos         int        `gorm:"column:votos_nulos;not null" json:"votos_nulos"`
	VotosBlancos       int        `gorm:"column:votos_blancos;not null" json:"votos_blancos"`
	Observaciones      *string    `gorm:"column:observaciones;type:text" json:"observaciones"`
	Estado             string     `gorm:"column:estado;type:varchar(20);not null;default:registrada" json:"estado"`
	Editada            bool       `gorm:"column:editada;not null;default:false" json:"editada"`
	FechaUltimaEdicion *time.Time `gorm:"column:fecha_ultima_edicion" json:"fecha_ultima_edicion"`
	ImagenURL          *string    `gorm:"column:imagen_url;type:varchar(255)" json:"imagen_url"`
	FechaRegistro      time.Time  `gorm:"column:fecha_registro;autoCreateTime" json:"fecha_registro"`

	Mesa *Mesa `gorm:"foreignKey:IDMesa;references:IDMesa" json:"-"`
}

func (Acta) TableName() string {
	return "acta"
}

// Voto 一个政治阵线在一张acta中某个职位的得票数
type Voto struct {
	IDVoto    int64  `gorm:"column:id_voto;primaryKey;autoIncrement" json:"id_voto"`
	IDActa    int64  `gorm:"column:id_acta;not null;index" json:"id_acta"`
	IDFrente  int64  `gorm:"column:id_frente;not null" json:"id_frente"`
	Cantidad  int    `gorm:"column:cantidad;not null" json:"cantidad"`
	TipoCargo string `gorm:"column:tipo_cargo;type:varchar(20);not null" json:"tipo_cargo"`

	Acta   *Acta           `gorm:"foreignKey:IDActa;references:IDActa;constraint:OnDelete:CASCADE" json:"-"`
	Frente *FrentePolitico `gorm:"foreignKey:IDFrente;references:IDFrente" json:"-"`
}

func (Voto) TableName() string {
	return "voto"
}
