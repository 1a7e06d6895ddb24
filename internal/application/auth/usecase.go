package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login del API de administración. No hay registro: el único
// credential es el password de admin cuyo hash bcrypt vive en configuración.
type AuthUseCase struct {
	passwordHash string
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(passwordHash string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{passwordHash: passwordHash, jwtCfg: jwtCfg}
}

// Login verifica el password contra el hash bcrypt y genera el JWT de admin.
func (uc *AuthUseCase) Login(password string) (string, error) {
	if uc.passwordHash == "" {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.passwordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, jwt.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
