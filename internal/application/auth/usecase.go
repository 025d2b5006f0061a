package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Scheduling-api/internal/application/dto"
	"github.com/jhoicas/Scheduling-api/internal/domain"
	"github.com/jhoicas/Scheduling-api/pkg/jwt"
)

// RoleOperator es el rol que emite este caso de uso; habilita las rutas de escritura.
const RoleOperator = "operator"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Credentials operador configurado: usuario y hash bcrypt de su contraseña.
type Credentials struct {
	Username     string
	PasswordHash string
}

// TokenUseCase emite tokens para el operador configurado.
type TokenUseCase struct {
	creds  Credentials
	jwtCfg JWTConfig
}

// NewTokenUseCase construye el caso de uso de auth.
func NewTokenUseCase(creds Credentials, jwtCfg JWTConfig) *TokenUseCase {
	return &TokenUseCase{creds: creds, jwtCfg: jwtCfg}
}

// Enabled indica si hay operador y secret configurados.
func (uc *TokenUseCase) Enabled() bool {
	return uc.jwtCfg.Secret != "" && uc.creds.Username != "" && uc.creds.PasswordHash != ""
}

// IssueToken verifica usuario y contraseña (bcrypt) y devuelve un JWT. ErrUnauthorized si no coinciden.
func (uc *TokenUseCase) IssueToken(in dto.TokenRequest) (*dto.TokenResponse, error) {
	if !uc.Enabled() {
		return nil, domain.ErrUnavailable
	}
	if subtle.ConstantTimeCompare([]byte(in.Username), []byte(uc.creds.Username)) != 1 {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.creds.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, in.Username, RoleOperator, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: uc.jwtCfg.ExpMinutes * 60}, nil
}
