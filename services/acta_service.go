package services

import (
	"errors"
	"time"

	"github.com/ConteoVivo/ActaMap/methods"
	"github.com/ConteoVivo/ActaMap/models"
	"gorm.io/gorm"
)

type ActaService struct {
	DB *gorm.DB
}

func NewActaService(db *gorm.DB) *ActaService {
	return &ActaService{DB: db}
}

// VotoEntrada 提交的单项票数: 一个阵线在一个职位上的票数
type VotoEntrada struct {
	IDFrente int64 `json:"id_frente"`
	Cantidad int   `json:"cantidad"`
}

// RegistroActa 注册acta的完整载荷
type RegistroActa struct {
	IDMesa         int64
	IDTipoEleccion int64
	IDUsuario      int64
	VotosNulos     int
	VotosBlancos   int
	Observaciones  *string
	VotosAlcalde   []VotoEntrada
	VotosConcejal  []VotoEntrada
	ImagenURL      *string
}

// EdicionActa 编辑acta的载荷, mesa和选举类型创建后不可变
type EdicionActa struct {
	VotosNulos    int
	VotosBlancos  int
	Observaciones *string
	Estado        *string
	VotosAlcalde  []VotoEntrada
	VotosConcejal []VotoEntrada
}

type ResultadoActa struct {
	IDActa       int64 `json:"id_acta"`
	VotosTotales int   `json:"votos_totales"`
	VotosValidos int   `json:"votos_validos"`
	Editada      bool  `json:"editada"`
}

var estadosValidos = []string{
	models.EstadoRegistrada,
	models.EstadoValidada,
	models.EstadoRechazada,
	models.EstadoPendiente,
}

// sumarVotos 求和时只计正数, cantidad<=0 的条目不进入持久化集合
func sumarVotos(entradas []VotoEntrada) int {
	total := 0
	for _, v := range entradas {
		if v.Cantidad > 0 {
			total += v.Cantidad
		}
	}
	return total
}

func validarEntradas(entradas []VotoEntrada) error {
	for _, v := range entradas {
		if v.Cantidad < 0 {
			return &ValidationError{Message: "La cantidad de votos no puede ser negativa"}
		}
		if v.Cantidad > 0 && v.IDFrente == 0 {
			return &ValidationError{Message: "Cada voto debe referenciar un frente político"}
		}
	}
	return nil
}

func construirVotos(idActa int64, cargo string, entradas []VotoEntrada) []models.Voto {
	votos := make([]models.Voto, 0, len(entradas))
	for _, v := range entradas {
		if v.Cantidad > 0 {
			votos = append(votos, models.Voto{
				IDActa:    idActa,
				IDFrente:  v.IDFrente,
				Cantidad:  v.Cantidad,
				TipoCargo: cargo,
			})
		}
	}
	return votos
}

// Registrar 在一个事务内插入acta及其voto行, 总数在服务端重算
func (s *ActaService) Registrar(req *RegistroActa) (*ResultadoActa, error) {
	if req.IDMesa == 0 {
		return nil, &ValidationError{Message: "El ID de mesa es requerido"}
	}
	if req.VotosNulos < 0 || req.VotosBlancos < 0 {
		return nil, &ValidationError{Message: "Los votos nulos y blancos no pueden ser negativos"}
	}
	if err := validarEntradas(req.VotosAlcalde); err != nil {
		return nil, err
	}
	if err := validarEntradas(req.VotosConcejal); err != nil {
		return nil, err
	}
	if req.IDTipoEleccion == 0 {
		req.IDTipoEleccion = 1
	}

	votosValidos := sumarVotos(req.VotosAlcalde) + sumarVotos(req.VotosConcejal)
	votosTotales := votosValidos + req.VotosNulos + req.VotosBlancos

	acta := models.Acta{
		IDMesa:         req.IDMesa,
		IDTipoEleccion: req.IDTipoEleccion,
		IDUsuario:      req.IDUsuario,
		VotosTotales:   votosTotales,
		VotosValidos:   votosValidos,
		VotosNulos:     req.VotosNulos,
		VotosBlancos:   req.VotosBlancos,
		Observaciones:  req.Observaciones,
		Estado:         models.EstadoRegistrada,
		Editada:        false,
		ImagenURL:      req.ImagenURL,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var mesa models.Mesa
		if err := tx.Where("id_mesa = ?", req.IDMesa).First(&mesa).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Mesa no encontrada"}
			}
			return err
		}

		if err := tx.Create(&acta).Error; err != nil {
			return err
		}

		votos := construirVotos(acta.IDActa, models.CargoAlcalde, req.VotosAlcalde)
		votos = append(votos, construirVotos(acta.IDActa, models.CargoConcejal, req.VotosConcejal)...)
		if len(votos) > 0 {
			if err := tx.Create(&votos).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, &PersistenceError{Message: "Error al registrar acta", Err: err}
	}

	return &ResultadoActa{
		IDActa:       acta.IDActa,
		VotosTotales: votosTotales,
		VotosValidos: votosValidos,
	}, nil
}

// Editar 全量替换: 更新聚合字段后删除全部voto行再重插,
// 保证voto集合与最后一次编辑的载荷完全一致
func (s *ActaService) Editar(idActa int64, req *EdicionActa) (*ResultadoActa, error) {
	if req.VotosNulos < 0 || req.VotosBlancos < 0 {
		return nil, &ValidationError{Message: "Los votos nulos y blancos no pueden ser negativos"}
	}
	if err := validarEntradas(req.VotosAlcalde); err != nil {
		return nil, err
	}
	if err := validarEntradas(req.VotosConcejal); err != nil {
		return nil, err
	}
	if req.Estado != nil && !methods.IsStringInSlice(*req.Estado, estadosValidos) {
		return nil, &ValidationError{Message: "Estado de acta inválido"}
	}

	votosValidos := sumarVotos(req.VotosAlcalde) + sumarVotos(req.VotosConcejal)
	votosTotales := votosValidos + req.VotosNulos + req.VotosBlancos

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var acta models.Acta
		if err := tx.Where("id_acta = ?", idActa).First(&acta).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Acta no encontrada"}
			}
			return err
		}

		ahora := time.Now()
		updates := map[string]interface{}{
			"votos_totales":        votosTotales,
			"votos_validos":        votosValidos,
			"votos_nulos":          req.VotosNulos,
			"votos_blancos":        req.VotosBlancos,
			"observaciones":        req.Observaciones,
			"editada":              true,
			"fecha_ultima_edicion": ahora,
		}
		if req.Estado != nil {
			updates["estado"] = *req.Estado
		}
		if err := tx.Model(&models.Acta{}).Where("id_acta = ?", idActa).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("id_acta = ?", idActa).Delete(&models.Voto{}).Error; err != nil {
			return err
		}

		votos := construirVotos(idActa, models.CargoAlcalde, req.VotosAlcalde)
		votos = append(votos, construirVotos(idActa, models.CargoConcejal, req.VotosConcejal)...)
		if len(votos) > 0 {
			if err := tx.Create(&votos).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		return nil, &PersistenceError{Message: "Error al editar acta", Err: err}
	}

	return &ResultadoActa{
		IDActa:       idActa,
		VotosTotales: votosTotales,
		VotosValidos: votosValidos,
		Editada:      true,
	}, nil
}
