package services

import (
	"fmt"
	"testing"

	"github.com/ConteoVivo/ActaMap/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 每个测试一个独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := models.MigrateAllTables(db); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	seedFixture(t, db)
	return db
}

// seedFixture 基础数据: 地理层级 + recinto + mesa + 两个frente + 用户
func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	geo := models.Geografico{Nombre: "Distrito 1", Tipo: "distrito"}
	if err := db.Create(&geo).Error; err != nil {
		t.Fatalf("Failed to seed geografico: %v", err)
	}
	recinto := models.Recinto{Nombre: "Colegio Central", IDGeografico: geo.IDGeografico}
	if err := db.Create(&recinto).Error; err != nil {
		t.Fatalf("Failed to seed recinto: %v", err)
	}
	mesa := models.Mesa{Codigo: "M-001", NumeroMesa: 1, IDRecinto: recinto.IDRecinto}
	if err := db.Create(&mesa).Error; err != nil {
		t.Fatalf("Failed to seed mesa: %v", err)
	}

	tipo := models.TipoEleccion{Nombre: "Municipal"}
	if err := db.Create(&tipo).Error; err != nil {
		t.Fatalf("Failed to seed tipo_eleccion: %v", err)
	}

	frentes := []models.FrentePolitico{
		{Nombre: "Frente A", Siglas: "FA", Color: "#ff0000"},
		{Nombre: "Frente B", Siglas: "FB", Color: "#0000ff"},
	}
	if err := db.Create(&frentes).Error; err != nil {
		t.Fatalf("Failed to seed frentes: %v", err)
	}

	persona := models.Persona{Nombre: "Juan", ApellidoPaterno: "Pérez", CI: "1234567"}
	if err := db.Create(&persona).Error; err != nil {
		t.Fatalf("Failed to seed persona: %v", err)
	}
	rol := models.Rol{Nombre: "operador"}
	if err := db.Create(&rol).Error; err != nil {
		t.Fatalf("Failed to seed rol: %v", err)
	}
	usuario := models.Usuario{
		NombreUsuario: "jperez",
		Contrasena:    "x",
		IDRol:         rol.IDRol,
		IDPersona:     persona.IDPersona,
	}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("Failed to seed usuario: %v", err)
	}
}

func contarFilas(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}
