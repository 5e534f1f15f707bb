package models

import (
	"log"

	"github.com/ConteoVivo/ActaMap/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func InitDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	if err := MigrateAllTables(DB); err != nil {
		log.Printf("Failed to migrate tables: %v", err)
	}

	seedReferenceData(DB)
}

// MigrateAllTables 批量迁移所有表
func MigrateAllTables(db *gorm.DB) error {
	models := []interface{}{
		&Persona{},
		&Rol{},
		&Usuario{},
		&Geografico{},
		&Recinto{},
		&Mesa{},
		&TipoEleccion{},
		&FrentePolitico{},
		&Acta{},
		&Voto{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return err
		}
	}
	return nil
}

// seedReferenceData 初始化基础数据: 选举类型、角色和默认管理员
func seedReferenceData(db *gorm.DB) {
	var count int64
	db.Model(&TipoEleccion{}).Count(&count)
	if count == 0 {
		db.Create(&TipoEleccion{Nombre: "Municipal", Descripcion: "Elección municipal"})
	}

	db.Model(&Rol{}).Count(&count)
	if count == 0 {
		roles := []Rol{
			{Nombre: "admin", Descripcion: "Administrador del sistema"},
			{Nombre: "operador", Descripcion: "Operador de transcripción"},
		}
		db.Create(&roles)
	}

	db.Model(&Usuario{}).Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Failed to hash default password: %v", err)
			return
		}
		persona := Persona{Nombre: "Admin", ApellidoPaterno: "Sistema", CI: "0000000"}
		if err := db.Create(&persona).Error; err != nil {
			log.Printf("Failed to create default persona: %v", err)
			return
		}
		var rol Rol
		db.Where("nombre = ?", "admin").First(&rol)
		usuario := Usuario{
			NombreUsuario: "admin",
			Contrasena:    string(hash),
			IDRol:         rol.IDRol,
			IDPersona:     persona.IDPersona,
		}
		if err := db.Create(&usuario).Error; err != nil {
			log.Printf("Failed to create default user: %v", err)
		}
	}
}
