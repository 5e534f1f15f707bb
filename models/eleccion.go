package models

type TipoEleccion struct {
	IDTipoEleccion int64  `gorm:"column:id_tipo_eleccion;primaryKey;autoIncrement" json:"id_tipo_eleccion"`
	Nombre         string `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Descripcion    string `gorm:"column:descripcion;type:varchar(255)" json:"descripcion"`
}

func (TipoEleccion) TableName() string {
	return "tipo_eleccion"
}

type FrentePolitico struct {
	IDFrente int64   `gorm:"column:id_frente;primaryKey;autoIncrement" json:"id_frente"`
	Nombre   string  `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Siglas   string  `gorm:"column:siglas;type:varchar(20)" json:"siglas"`
	Color    string  `gorm:"column:color;type:varchar(20)" json:"color"`
	Logo     *string `gorm:"column:logo;type:varchar(255)" json:"logo"`
}

func (FrentePolitico) TableName() string {
	return "frente_politico"
}
