package routers

import (
	"github.com/ConteoVivo/ActaMap/config"
	"github.com/ConteoVivo/ActaMap/middleware"
	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/views"
	"github.com/gin-gonic/gin"
)

func ApiRouters(r *gin.Engine) {
	UserController := &views.UserController{}
	actaHandler := views.NewActaHandler(models.DB)

	authRouter := r.Group("/api/auth")
	{
		authRouter.POST("/login", UserController.Login)
		authRouter.GET("/me", middleware.AuthRequerido(), UserController.Me)
	}

	usuariosRouter := r.Group("/api/usuarios")
	{
		usuariosRouter.GET("/roles", UserController.GetRoles)
		usuariosRouter.GET("", UserController.GetUsuarios)
		usuariosRouter.POST("", UserController.CrearUsuario)
		usuariosRouter.GET("/:id", UserController.GetUsuario)
	}

	geograficoRouter := r.Group("/api/geografico")
	{
		geograficoRouter.GET("", UserController.GetGeograficos)
		geograficoRouter.GET("/tipos", UserController.GetTipos)
		geograficoRouter.GET("/padres", UserController.GetPadres)
		geograficoRouter.POST("", UserController.CrearGeografico)
		geograficoRouter.PUT("/:id", UserController.ActualizarGeografico)
		geograficoRouter.DELETE("/:id", UserController.EliminarGeografico)
		geograficoRouter.GET("/:id", UserController.GetGeografico)
	}

	votosRouter := r.Group("/api/votos")
	{
		votosRouter.GET("", actaHandler.GetVotos)
		votosRouter.GET("/resultados-vivo", actaHandler.ResultadosVivo)
		votosRouter.GET("/acta/:id", actaHandler.GetActa)
		votosRouter.POST("/registrar-acta", middleware.AuthRequerido(), actaHandler.RegistrarActa)
		votosRouter.PUT("/acta/:id", middleware.AuthRequerido(), actaHandler.EditarActa)

		votosRouter.GET("/recintos", UserController.GetRecintos)
		votosRouter.POST("/recintos", UserController.CrearRecinto)
		votosRouter.PUT("/recintos/:id", UserController.ActualizarRecinto)
		votosRouter.DELETE("/recintos/:id", UserController.EliminarRecinto)

		votosRouter.GET("/mesas", UserController.GetMesas)
		votosRouter.POST("/mesas", UserController.CrearMesa)
		votosRouter.PUT("/mesas/:id", UserController.ActualizarMesa)
		votosRouter.DELETE("/mesas/:id", UserController.EliminarMesa)

		votosRouter.GET("/frentes", UserController.GetFrentes)
	}

	// acta扫描件, 只增不改
	r.Static("/uploads", config.UploadDir)
}
