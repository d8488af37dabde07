package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/entity"
	"github.com/PunitTak2005/restaurant-qr-menu/repository"
	"github.com/PunitTak2005/restaurant-qr-menu/utils"
)

// AuthService handles register/login and token issuing.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user with a normalized email and hashed password and
// returns the user plus a fresh token.
func (s *AuthService) Register(name, email, password, role string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if role == "" {
		role = entity.RoleCustomer
	}
	role = strings.ToLower(role)
	if !entity.ValidRole(role) {
		return "", nil, ErrInvalidRole
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.token(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login checks credentials and issues a token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.token(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) token(u *entity.User) (string, error) {
	return utils.GenerateToken(u.ID, u.Role, u.Email, u.Name, s.jwtSecret, s.jwtTTL)
}
