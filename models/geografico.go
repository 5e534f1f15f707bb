package models

type Geografico struct {
	IDGeografico   int64   `gorm:"column:id_geografico;primaryKey;autoIncrement" json:"id_geografico"`
	Nombre         string  `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Codigo         *string `gorm:"column:codigo;type:varchar(50)" json:"codigo"`
	Ubicacion      *string `gorm:"column:ubicacion;type:varchar(255)" json:"ubicacion"`
	Tipo           string  `gorm:"column:tipo;type:varchar(50);not null" json:"tipo"`
	FkIDGeografico *int64  `gorm:"column:fk_id_geografico" json:"fk_id_geografico"`

	Padre *Geografico `gorm:"foreignKey:FkIDGeografico;references:IDGeografico" json:"-"`
}

func (Geografico) TableName() string {
	return "geografico"
}

type Recinto struct {
	IDRecinto    int64   `gorm:"column:id_recinto;primaryKey;autoIncrement" json:"id_recinto"`
	Nombre       string  `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Direccion    *string `gorm:"column:direccion;type:varchar(255)" json:"direccion"`
	IDGeografico int64   `gorm:"column:id_geografico" json:"id_geografico"`

	Geografico *Geografico `gorm:"foreignKey:IDGeografico;references:IDGeografico" json:"-"`
}

func (Recinto) TableName() string {
	return "recinto"
}

type Mesa struct {
	IDMesa       int64   `gorm:"column:id_mesa;primaryKey;autoIncrement" json:"id_mesa"`
	Codigo       string  `gorm:"column:codigo;type:varchar(50);uniqueIndex;not null" json:"codigo"`
	Descripcion  *string `gorm:"column:descripcion;type:varchar(255)" json:"descripcion"`
	NumeroMesa   int     `gorm:"column:numero_mesa;not null" json:"numero_mesa"`
	IDRecinto    int64   `gorm:"column:id_recinto" json:"id_recinto"`
	IDGeografico *int64  `gorm:"column:id_geografico" json:"id_geografico"`

	Recinto *Recinto `gorm:"foreignKey:IDRecinto;references:IDRecinto" json:"-"`
}

func (Mesa) TableName() string {
	return "mesa"
}
