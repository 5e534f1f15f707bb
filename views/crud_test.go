package views_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGeograficoCRUD(t *testing.T) {
	r := setupServer(t)

	// crear
	w, resp := doJSON(t, r, "POST", "/api/geografico", "", gin.H{
		"nombre": "Distrito 2",
		"tipo":   "distrito",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var creado struct {
		IDGeografico int64 `json:"id_geografico"`
	}
	if err := json.Unmarshal(resp.Data, &creado); err != nil {
		t.Fatalf("invalid create data: %s", resp.Data)
	}

	// duplicado (nombre, tipo)
	w, _ = doJSON(t, r, "POST", "/api/geografico", "", gin.H{
		"nombre": "Distrito 2",
		"tipo":   "distrito",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate status = %d, want 400", w.Code)
	}

	// nombre y tipo requeridos
	w, _ = doJSON(t, r, "POST", "/api/geografico", "", gin.H{"nombre": "X"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing tipo status = %d, want 400", w.Code)
	}

	// hijo que referencia al nuevo distrito
	w, resp = doJSON(t, r, "POST", "/api/geografico", "", gin.H{
		"nombre":           "Zona Norte",
		"tipo":             "zona",
		"fk_id_geografico": creado.IDGeografico,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create child status = %d", w.Code)
	}
	var hijo struct {
		IDGeografico int64 `json:"id_geografico"`
	}
	json.Unmarshal(resp.Data, &hijo)

	// con dependientes no se elimina
	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/geografico/%d", creado.IDGeografico), "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("delete with children status = %d, want 400", w.Code)
	}

	// actualizar hijo
	w, _ = doJSON(t, r, "PUT", fmt.Sprintf("/api/geografico/%d", hijo.IDGeografico), "", gin.H{
		"nombre": "Zona Norte B",
		"tipo":   "zona",
	})
	if w.Code != http.StatusOK {
		t.Errorf("update status = %d", w.Code)
	}

	// eliminar hijo y luego el padre
	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/geografico/%d", hijo.IDGeografico), "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete child status = %d", w.Code)
	}
	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/geografico/%d", creado.IDGeografico), "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete parent status = %d", w.Code)
	}

	w, _ = doJSON(t, r, "DELETE", "/api/geografico/99999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete missing status = %d, want 404", w.Code)
	}
}

func TestMesaCRUD(t *testing.T) {
	r := setupServer(t)

	// código duplicado
	w, _ := doJSON(t, r, "POST", "/api/votos/mesas", "", gin.H{
		"codigo":      "M-001",
		"numero_mesa": 2,
		"id_recinto":  1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate codigo status = %d, want 400", w.Code)
	}

	w, resp := doJSON(t, r, "POST", "/api/votos/mesas", "", gin.H{
		"codigo":      "M-002",
		"numero_mesa": 2,
		"id_recinto":  1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create mesa status = %d: %s", w.Code, w.Body.String())
	}
	var mesa struct {
		IDMesa int64 `json:"id_mesa"`
	}
	json.Unmarshal(resp.Data, &mesa)

	// listado filtrado por recinto
	w, resp = doJSON(t, r, "GET", "/api/votos/mesas?id_recinto=1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list mesas status = %d", w.Code)
	}
	var mesas []struct {
		Codigo string `json:"codigo"`
	}
	if err := json.Unmarshal(resp.Data, &mesas); err != nil {
		t.Fatalf("invalid mesas list: %s", resp.Data)
	}
	if len(mesas) != 2 {
		t.Errorf("mesas = %d, want 2", len(mesas))
	}

	// mesa sin actas se elimina
	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/votos/mesas/%d", mesa.IDMesa), "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete mesa status = %d", w.Code)
	}
}

func TestMesaConActasNoSeElimina(t *testing.T) {
	r := setupServer(t)
	token := login(t, r)
	registrarActa(t, r, token)

	w, _ := doJSON(t, r, "DELETE", "/api/votos/mesas/1", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("delete mesa with actas status = %d, want 400", w.Code)
	}
}

func TestRecintoCRUD(t *testing.T) {
	r := setupServer(t)

	w, resp := doJSON(t, r, "POST", "/api/votos/recintos", "", gin.H{
		"nombre":        "Escuela Sur",
		"id_geografico": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create recinto status = %d: %s", w.Code, w.Body.String())
	}
	var recinto struct {
		IDRecinto int64 `json:"id_recinto"`
	}
	json.Unmarshal(resp.Data, &recinto)

	w, _ = doJSON(t, r, "POST", "/api/votos/recintos", "", gin.H{"nombre": "Sin distrito"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("recinto without geografico status = %d, want 400", w.Code)
	}

	w, resp = doJSON(t, r, "GET", "/api/votos/recintos?id_geografico=1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list recintos status = %d", w.Code)
	}
	var recintos []struct {
		Nombre        string `json:"nombre"`
		CantidadMesas int    `json:"cantidad_mesas"`
	}
	if err := json.Unmarshal(resp.Data, &recintos); err != nil {
		t.Fatalf("invalid recintos list: %s", resp.Data)
	}
	if len(recintos) != 2 {
		t.Errorf("recintos = %d, want 2", len(recintos))
	}

	w, _ = doJSON(t, r, "PUT", fmt.Sprintf("/api/votos/recintos/%d", recinto.IDRecinto), "", gin.H{
		"nombre":        "Escuela Sur Renovada",
		"id_geografico": 1,
	})
	if w.Code != http.StatusOK {
		t.Errorf("update recinto status = %d", w.Code)
	}

	w, _ = doJSON(t, r, "DELETE", fmt.Sprintf("/api/votos/recintos/%d", recinto.IDRecinto), "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete recinto status = %d", w.Code)
	}
}

func TestCrearUsuario(t *testing.T) {
	r := setupServer(t)

	nuevo := gin.H{
		"nombre_usuario": "mlopez",
		"contrasena":     "clave456",
		"id_rol":         1,
		"persona": gin.H{
			"nombre":           "María",
			"apellido_paterno": "López",
			"ci":               "7654321",
		},
	}
	w, _ := doJSON(t, r, "POST", "/api/usuarios", "", nuevo)
	if w.Code != http.StatusCreated {
		t.Fatalf("create user status = %d: %s", w.Code, w.Body.String())
	}

	// nombre de usuario duplicado
	w, _ = doJSON(t, r, "POST", "/api/usuarios", "", nuevo)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate username status = %d, want 400", w.Code)
	}

	// CI duplicado con otro nombre de usuario
	w, _ = doJSON(t, r, "POST", "/api/usuarios", "", gin.H{
		"nombre_usuario": "otro",
		"contrasena":     "clave456",
		"id_rol":         1,
		"persona": gin.H{
			"nombre":           "Otro",
			"apellido_paterno": "Usuario",
			"ci":               "7654321",
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate CI status = %d, want 400", w.Code)
	}

	// el nuevo usuario puede iniciar sesión
	w, _ = doJSON(t, r, "POST", "/api/auth/login", "", gin.H{
		"nombre_usuario": "mlopez",
		"contrasena":     "clave456",
	})
	if w.Code != http.StatusOK {
		t.Errorf("new user login status = %d: %s", w.Code, w.Body.String())
	}

	w, resp := doJSON(t, r, "GET", "/api/usuarios", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list usuarios status = %d", w.Code)
	}
	var usuarios []struct {
		NombreUsuario string `json:"nombre_usuario"`
		Activo        bool   `json:"activo"`
	}
	if err := json.Unmarshal(resp.Data, &usuarios); err != nil {
		t.Fatalf("invalid usuarios list: %s", resp.Data)
	}
	if len(usuarios) != 2 {
		t.Errorf("usuarios = %d, want 2", len(usuarios))
	}
	for _, u := range usuarios {
		if !u.Activo {
			t.Errorf("usuario %s should be activo", u.NombreUsuario)
		}
	}
}
