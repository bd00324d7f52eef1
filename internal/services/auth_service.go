package services

import (
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"catalogo/internal/auth"
	"catalogo/internal/domain"
	"catalogo/internal/repos"
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.TokenIssuer
}

func NewAuthService(users *repos.UserRepo, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

// Register creates a user. Only reachable behind the admin gate.
func (s *AuthService) Register(usuario, password, rol string) (*domain.User, error) {
	usuario = strings.TrimSpace(usuario)
	if rol == "" {
		rol = domain.RolEmpleado
	}
	if usuario == "" || password == "" {
		return nil, validationErr("usuario y password son obligatorios")
	}
	if !domain.ValidRol(rol) {
		return nil, validationErr("rol inválido")
	}

	exists, err := s.Users.Exists(usuario)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	id, err := s.Users.Insert(usuario, string(hash), rol)
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Usuario: usuario, Rol: rol}, nil
}

// Login verifies credentials and issues a token. Unknown user and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(usuario, password string) (string, *domain.User, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" || password == "" {
		return "", nil, validationErr("usuario y password son obligatorios")
	}

	u, err := s.Users.ByUsuario(usuario)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrBadCreds
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}

	token, err := s.Tokens.Sign(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
