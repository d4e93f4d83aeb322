package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/digitechhealth/clinic-api/internal/core/domain"
	"github.com/digitechhealth/clinic-api/internal/core/ports"
)

// TokenStore abstracts the revoked-token store (Redis). Logout records a
// token's jti; the auth middleware rejects revoked tokens until they expire.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
}

// AuthService implements registration, login, logout, and account edits.
type AuthService struct {
	users     ports.UserRepository
	patients  ports.PatientRepository
	doctors   ports.DoctorRepository
	tokens    TokenStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	tokens TokenStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		patients:  patients,
		doctors:   doctors,
		tokens:    tokens,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register creates the account and auto-provisions the matching profile
// record: patients get a Patient named after the username, doctors get a
// Doctor with default specialization and availability.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := in.Role
	if role == "" {
		role = domain.RolePatient
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	if existing, err := s.users.FindByUsernameOrEmail(ctx, in.Username, in.Email); err == nil && existing != nil {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		ImageFile:    domain.DefaultImageFile,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RolePatient:
		_, err = s.patients.Create(ctx, &domain.Patient{
			UserID:    created.ID,
			Name:      created.Username,
			ImageFile: domain.DefaultImageFile,
			CreatedAt: now,
		})
	case domain.RoleDoctor:
		_, err = s.doctors.Create(ctx, &domain.Doctor{
			UserID:         created.ID,
			Username:       created.Username,
			Email:          created.Email,
			Specialization: domain.DefaultSpecialization,
			Availability:   domain.DefaultAvailability,
		})
	}
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login resolves loginID as a username or email and verifies the password.
// Unknown identifier and wrong password produce the same error so the
// response never reveals which part was wrong.
func (s *AuthService) Login(ctx context.Context, loginID, password string) (string, *domain.User, error) {
	if loginID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByLogin(ctx, loginID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return token, user, nil
}

// Logout revokes the token's jti until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, jti, expiresAt)
}

func (s *AuthService) Account(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateAccount changes the account's username, email, and picture
// reference. The new username/email must not belong to another account.
func (s *AuthService) UpdateAccount(ctx context.Context, userID string, in ports.UpdateAccountInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Username == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if other, err := s.users.FindByUsernameOrEmail(ctx, in.Username, in.Email); err == nil && other != nil && other.ID != user.ID {
		return nil, domain.ErrUserExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user.Username = in.Username
	user.Email = in.Email
	if in.ImageFile != "" {
		user.ImageFile = in.ImageFile
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
