package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/ImmrAD/the-digital-diner/entity"
	"github.com/ImmrAD/the-digital-diner/pkg/apperr"
	"github.com/ImmrAD/the-digital-diner/repository"
	"github.com/ImmrAD/the-digital-diner/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// AuthService handles register/login business logic. The phone number is
// the durable identity that ties a user to their order history.
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

// Register validates at the boundary and short-circuits before any storage
// call. The plaintext password is hashed immediately and never persisted.
func (s *AuthService) Register(name, phone, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperr.Validationf("name is required")
	}
	if !phoneRe.MatchString(phone) {
		return nil, apperr.Validationf("phone number must be 10 digits")
	}
	if email != "" && !emailRe.MatchString(email) {
		return nil, apperr.Validationf("invalid email format")
	}
	if len(password) < 8 {
		return nil, apperr.Validationf("password must be at least 8 characters")
	}

	count, err := s.userRepo.CountByPhone(phone)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflictf("phone_number", "phone number already registered")
	}
	if email != "" {
		count, err = s.userRepo.CountByEmail(email)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.Conflictf("email", "email already registered")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internalf(err, "hash password failed")
	}

	user := &entity.User{
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hashed),
	}
	if email != "" {
		user.Email = &email
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login returns the user and a signed token. Unknown phone and wrong
// password produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(phone, password string) (*entity.User, string, error) {
	phone = strings.TrimSpace(phone)
	if !phoneRe.MatchString(phone) {
		return nil, "", apperr.Validationf("phone number must be 10 digits")
	}

	user, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, "", apperr.Authf("invalid credentials")
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.Authf("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Phone, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", apperr.Internalf(err, "cannot generate token")
	}

	return user, token, nil
}
