package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Propiedades-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session sesión del asistente recién emitida.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// SessionUseCase emite los tokens que identifican el borrador de alta.
// La identidad del usuario la resuelve un servicio externo; aquí solo se propaga.
type SessionUseCase struct {
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewSessionUseCase construye el caso de uso de sesiones.
func NewSessionUseCase(jwtCfg JWTConfig) *SessionUseCase {
	return &SessionUseCase{jwtCfg: jwtCfg, now: time.Now}
}

// Issue genera un ID de sesión nuevo y su token firmado.
func (uc *SessionUseCase) Issue(userID string) (*Session, error) {
	sessionID := uuid.New().String()
	token, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, userID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        sessionID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute).UTC(),
	}, nil
}
