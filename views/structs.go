package views

import "github.com/ConteoVivo/ActaMap/services"

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	Contrasena    string `json:"contrasena" binding:"required"`
}

type PersonaRequest struct {
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	CI              string  `json:"ci"`
	Celular         *string `json:"celular"`
	Email           *string `json:"email"`
}

type CrearUsuarioRequest struct {
	NombreUsuario string          `json:"nombre_usuario"`
	Contrasena    string          `json:"contrasena"`
	IDRol         int64           `json:"id_rol"`
	Persona       *PersonaRequest `json:"persona"`
}

type GeograficoRequest struct {
	Nombre         string  `json:"nombre"`
	Codigo         *string `json:"codigo"`
	Ubicacion      *string `json:"ubicacion"`
	Tipo           string  `json:"tipo"`
	FkIDGeografico *int64  `json:"fk_id_geografico"`
}

type RecintoRequest struct {
	Nombre       string  `json:"nombre"`
	Direccion    *string `json:"direccion"`
	IDGeografico int64   `json:"id_geografico"`
}

type MesaRequest struct {
	Codigo      string  `json:"codigo"`
	Descripcion *string `json:"descripcion"`
	NumeroMesa  int     `json:"numero_mesa"`
	IDRecinto   int64   `json:"id_recinto"`
}

type EditarActaRequest struct {
	VotosNulos    int                    `json:"votos_nulos"`
	VotosBlancos  int                    `json:"votos_blancos"`
	Observaciones *string                `json:"observaciones"`
	Estado        *string                `json:"estado"`
	VotosAlcalde  []services.VotoEntrada `json:"votos_alcalde"`
	VotosConcejal []services.VotoEntrada `json:"votos_concejal"`
}
