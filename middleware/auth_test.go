package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ConteoVivo/ActaMap/config"
	"github.com/gin-gonic/gin"
)

func setupProbe() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", AuthRequerido(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id_usuario": c.MustGet(CtxIDUsuario)})
	})
	return r
}

func TestAuthRequerido(t *testing.T) {
	config.JWTSecret = "secreto-de-prueba"
	r := setupProbe()

	token, err := GenerarToken(42, "jperez", "operador")
	if err != nil {
		t.Fatalf("GenerarToken failed: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"sin token", "", http.StatusUnauthorized},
		{"esquema incorrecto", "Basic abc", http.StatusUnauthorized},
		{"token corrupto", "Bearer no-es-un-jwt", http.StatusUnauthorized},
		{"token valido", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protegido", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestVerificarToken(t *testing.T) {
	config.JWTSecret = "secreto-de-prueba"

	token, err := GenerarToken(7, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerarToken failed: %v", err)
	}

	claims, err := VerificarToken(token)
	if err != nil {
		t.Fatalf("VerificarToken failed: %v", err)
	}
	if claims.IDUsuario != 7 || claims.NombreUsuario != "admin" || claims.Rol != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	// un token firmado con otro secreto debe rechazarse
	config.JWTSecret = "otro-secreto"
	if _, err := VerificarToken(token); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
	config.JWTSecret = "secreto-de-prueba"
}
