package services

import (
	"time"

	"github.com/ConteoVivo/ActaMap/models"
	"gorm.io/gorm"
)

type ResultadosService struct {
	DB *gorm.DB
}

func NewResultadosService(db *gorm.DB) *ResultadosService {
	return &ResultadosService{DB: db}
}

// ResultadoFrente 一个阵线的累计得票, 按职位拆分
type ResultadoFrente struct {
	IDFrente      int64  `json:"id_frente"`
	Nombre        string `json:"nombre"`
	Siglas        string `json:"siglas"`
	Color         string `json:"color"`
	TotalVotos    int    `json:"total_votos"`
	VotosAlcalde  int    `json:"votos_alcalde"`
	VotosConcejal int    `json:"votos_concejal"`
	ActasConVotos int    `json:"actas_con_votos"`
}

type ResumenActas struct {
	TotalActas     int `json:"totalActas"`
	TotalVotos     int `json:"totalVotos"`
	VotosNulos     int `json:"votosNulos"`
	VotosBlancos   int `json:"votosBlancos"`
	ActasValidadas int `json:"actasValidadas"`
}

type ResultadosVivo struct {
	Resultados []ResultadoFrente `json:"resultados"`
	Resumen    ResumenActas      `json:"resumen"`
}

// ActaResumen acta列表行, 带mesa/recinto/usuario等关联名称
type ActaResumen struct {
	IDActa             int64      `json:"id_acta"`
	FechaRegistro      time.Time  `json:"fecha_registro"`
	VotosTotales       int        `json:"votos_totales"`
	VotosNulos         int        `json:"votos_nulos"`
	VotosBlancos       int        `json:"votos_blancos"`
	Estado             string     `json:"estado"`
	Editada            bool       `json:"editada"`
	FechaUltimaEdicion *time.Time `json:"fecha_ultima_edicion"`
	ImagenURL          *string    `json:"imagen_url"`
	CodigoMesa         string     `json:"codigo_mesa"`
	NumeroMesa         int        `json:"numero_mesa"`
	NombreRecinto      *string    `json:"nombre_recinto"`
	NombreGeografico   *string    `json:"nombre_geografico"`
	NombreUsuario      *string    `json:"nombre_usuario"`
	TipoEleccion       *string    `json:"tipo_eleccion"`
}

// VotoDetalle acta明细中的单行voto, 带frente信息
type VotoDetalle struct {
	IDVoto       int64  `json:"id_voto"`
	IDFrente     int64  `json:"id_frente"`
	Cantidad     int    `json:"cantidad"`
	TipoCargo    string `json:"tipo_cargo"`
	NombreFrente string `json:"nombre_frente"`
	Siglas       string `json:"siglas"`
	Color        string `json:"color"`
}

type ActaDetalle struct {
	Acta  ActaCompleta  `json:"acta"`
	Votos []VotoDetalle `json:"votos"`
}

type ActaCompleta struct {
	models.Acta      `gorm:"embedded"`
	CodigoMesa       string  `gorm:"column:codigo_mesa" json:"codigo_mesa"`
	NumeroMesa       int     `gorm:"column:numero_mesa" json:"numero_mesa"`
	NombreRecinto    *string `gorm:"column:nombre_recinto" json:"nombre_recinto"`
	NombreGeografico *string `gorm:"column:nombre_geografico" json:"nombre_geografico"`
	NombreUsuario    *string `gorm:"column:nombre_usuario" json:"nombre_usuario"`
	TipoEleccion     *string `gorm:"column:tipo_eleccion" json:"tipo_eleccion"`
}

// ListarActas 全部acta, 最新优先
func (s *ResultadosService) ListarActas() ([]ActaResumen, error) {
	var actas []ActaResumen
	err := s.DB.Raw(`
		SELECT
			a.id_acta,
			a.fecha_registro,
			a.votos_totales,
			a.votos_nulos,
			a.votos_blancos,
			a.estado,
			a.editada,
			a.fecha_ultima_edicion,
			a.imagen_url,
			m.codigo AS codigo_mesa,
			m.numero_mesa,
			r.nombre AS nombre_recinto,
			g.nombre AS nombre_geografico,
			u.nombre_usuario,
			te.nombre AS tipo_eleccion
		FROM acta a
		INNER JOIN mesa m ON a.id_mesa = m.id_mesa
		LEFT JOIN recinto r ON m.id_recinto = r.id_recinto
		LEFT JOIN geografico g ON r.id_geografico = g.id_geografico
		LEFT JOIN usuario u ON a.id_usuario = u.id_usuario
		LEFT JOIN tipo_eleccion te ON a.id_tipo_eleccion = te.id_tipo_eleccion
		ORDER BY a.fecha_registro DESC
	`).Scan(&actas).Error
	if err != nil {
		return nil, &PersistenceError{Message: "Error al obtener actas", Err: err}
	}
	return actas, nil
}

// DetalleActa acta信息加上其voto行, 按职位和阵线名排序
func (s *ResultadosService) DetalleActa(idActa int64) (*ActaDetalle, error) {
	var acta ActaCompleta
	err := s.DB.Raw(`
		SELECT
			a.*,
			m.codigo AS codigo_mesa,
			m.numero_mesa,
			r.nombre AS nombre_recinto,
			g.nombre AS nombre_geografico,
			u.nombre_usuario,
			te.nombre AS tipo_eleccion
		FROM acta a
		INNER JOIN mesa m ON a.id_mesa = m.id_mesa
		LEFT JOIN recinto r ON m.id_recinto = r.id_recinto
		LEFT JOIN geografico g ON r.id_geografico = g.id_geografico
		LEFT JOIN usuario u ON a.id_usuario = u.id_usuario
		LEFT JOIN tipo_eleccion te ON a.id_tipo_eleccion = te.id_tipo_eleccion
		WHERE a.id_acta = ?
	`, idActa).Scan(&acta).Error
	if err != nil {
		return nil, &PersistenceError{Message: "Error al obtener acta", Err: err}
	}
	if acta.IDActa == 0 {
		return nil, &NotFoundError{Message: "Acta no encontrada"}
	}

	var votos []VotoDetalle
	err = s.DB.Raw(`
		SELECT
			v.id_voto,
			v.id_frente,
			v.cantidad,
			v.tipo_cargo,
			f.nombre AS nombre_frente,
			f.siglas,
			f.color
		FROM voto v
		INNER JOIN frente_politico f ON v.id_frente = f.id_frente
		WHERE v.id_acta = ?
		ORDER BY v.tipo_cargo, f.nombre
	`, idActa).Scan(&votos).Error
	if err != nil {
		return nil, &PersistenceError{Message: "Error al obtener votos del acta", Err: err}
	}

	return &ActaDetalle{Acta: acta, Votos: votos}, nil
}

// ResultadosVivo 按阵线聚合全部voto行, 零票阵线不进入排名,
// 排序按总票数降序, 平票顺序不保证
func (s *ResultadosService) ResultadosVivo() (*ResultadosVivo, error) {
	var resultados []ResultadoFrente
	err := s.DB.Raw(`
		SELECT
			f.id_frente,
			f.nombre,
			f.siglas,
			f.color,
			SUM(v.cantidad) AS total_votos,
			SUM(CASE WHEN v.tipo_cargo = 'alcalde' THEN v.cantidad ELSE 0 END) AS votos_alcalde,
			SUM(CASE WHEN v.tipo_cargo = 'concejal' THEN v.cantidad ELSE 0 END) AS votos_concejal,
			COUNT(DISTINCT v.id_acta) AS actas_con_votos
		FROM frente_politico f
		LEFT JOIN voto v ON f.id_frente = v.id_frente
		GROUP BY f.id_frente, f.nombre, f.siglas, f.color
		HAVING SUM(v.cantidad) > 0
		ORDER BY total_votos DESC
	`).Scan(&resultados).Error
	if err != nil {
		return nil, &PersistenceError{Message: "Error al obtener resultados", Err: err}
	}

	var resumen ResumenActas
	err = s.DB.Raw(`
		SELECT
			COUNT(*) AS total_actas,
			COALESCE(SUM(votos_totales), 0) AS total_votos,
			COALESCE(SUM(votos_nulos), 0) AS votos_nulos,
			COALESCE(SUM(votos_blancos), 0) AS votos_blancos,
			COUNT(CASE WHEN estado = 'validada' THEN 1 END) AS actas_validadas
		FROM acta
	`).Scan(&resumen).Error
	if err != nil {
		return nil, &PersistenceError{Message: "Error al obtener resumen de actas", Err: err}
	}

	return &ResultadosVivo{Resultados: resultados, Resumen: resumen}, nil
}
