package middleware

import (
	"strings"
	"time"

	"github.com/ConteoVivo/ActaMap/config"
	"github.com/ConteoVivo/ActaMap/response"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 上下文键, 由AuthRequerido写入
const (
	CtxIDUsuario     = "id_usuario"
	CtxNombreUsuario = "nombre_usuario"
	CtxRol           = "rol"
)

type Claims struct {
	IDUsuario     int64  `json:"id"`
	NombreUsuario string `json:"nombre_usuario"`
	Rol           string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerarToken 签发24小时有效的HS256令牌
func GenerarToken(idUsuario int64, nombreUsuario string, rol string) (string, error) {
	claims := Claims{
		IDUsuario:     idUsuario,
		NombreUsuario: nombreUsuario,
		Rol:           rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

// VerificarToken 解析并校验Bearer令牌
func VerificarToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// AuthRequerido 写操作的认证门卫: 无令牌或令牌无效直接401,
// 绝不带着空身份继续执行
func AuthRequerido() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "No autorizado: token requerido")
			c.Abort()
			return
		}

		claims, err := VerificarToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "Token inválido")
			c.Abort()
			return
		}

		c.Set(CtxIDUsuario, claims.IDUsuario)
		c.Set(CtxNombreUsuario, claims.NombreUsuario)
		c.Set(CtxRol, claims.Rol)
		c.Next()
	}
}
