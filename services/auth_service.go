package services

import (
	"errors"
	"strings"
	"time"

	"menuqr/entity"
	"menuqr/repository"
	"menuqr/utils"

	"golang.org/x/crypto/bcrypt"
)

// Fixed user-facing auth errors. Controllers map these onto the envelope.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, please try again later")
)

// AuthService handles register/login and token issuing. In demo mode the
// password check is skipped entirely: any credentials sign in as a vendor
// named after the email, the way the offline substitute behaves.
type AuthService struct {
	vendorRepo repository.VendorRepository
	jwtSecret  string
	jwtTTL     time.Duration
	demoMode   bool
	throttle   *LoginThrottle
}

func NewAuthService(repo repository.VendorRepository, secret string, ttl time.Duration, demoMode bool) *AuthService {
	return &AuthService{
		vendorRepo: repo,
		jwtSecret:  secret,
		jwtTTL:     ttl,
		demoMode:   demoMode,
		throttle:   NewLoginThrottle(),
	}
}

// Register creates a vendor account. Duplicate emails error out.
func (s *AuthService) Register(email, password, restaurantName string) (string, *entity.Vendor, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.vendorRepo.CountByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, errors.New("hash password failed")
	}

	if restaurantName == "" {
		restaurantName = "My Restaurant"
	}
	vendor := &entity.Vendor{
		Email:          email,
		Password:       string(hashed),
		RestaurantName: strings.TrimSpace(restaurantName),
		PhotoURL:       utils.AvatarURL(restaurantName, ""),
		Provider:       "password",
	}
	if err := s.vendorRepo.Create(vendor); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(vendor.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, vendor, nil
}

// Login verifies credentials and issues a JWT.
func (s *AuthService) Login(email, password string) (string, *entity.Vendor, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.demoMode {
		return s.demoLogin(email)
	}

	if s.throttle.WaitSeconds(email) > 0 {
		return "", nil, ErrTooManyAttempts
	}

	vendor, err := s.vendorRepo.FindByEmail(email)
	if err != nil {
		s.throttle.RecordFailure(email)
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(password)); err != nil {
		s.throttle.RecordFailure(email)
		return "", nil, ErrInvalidCredentials
	}
	s.throttle.RecordSuccess(email)

	token, err := utils.GenerateToken(vendor.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, vendor, nil
}

// demoLogin signs anyone in, naming the vendor after the email local part.
func (s *AuthService) demoLogin(email string) (string, *entity.Vendor, error) {
	name := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		name = email[:i]
	}
	vendor := &entity.Vendor{
		Email:          email,
		RestaurantName: name,
		PhotoURL:       utils.AvatarURL(name, ""),
		Provider:       "password",
	}
	if err := s.vendorRepo.Upsert(vendor); err != nil {
		return "", nil, err
	}
	token, err := utils.GenerateToken(vendor.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, vendor, nil
}

// CompleteGoogle turns a consumed hand-off result into a signed-in vendor.
// Profile fields merge into an existing account with the same email.
func (s *AuthService) CompleteGoogle(res *HandoffResult) (string, *entity.Vendor, error) {
	name := res.DisplayName
	if name == "" {
		name = "My Restaurant"
	}
	photo := res.PhotoURL
	if photo == "" {
		photo = utils.AvatarURL(name, "4285F4")
	}
	vendor := &entity.Vendor{
		Email:          strings.ToLower(strings.TrimSpace(res.Email)),
		RestaurantName: name,
		PhotoURL:       photo,
		Provider:       "google",
	}
	if err := s.vendorRepo.Upsert(vendor); err != nil {
		return "", nil, err
	}
	token, err := utils.GenerateToken(vendor.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, vendor, nil
}

func (s *AuthService) Profile(vendorID uint) (*entity.Vendor, error) {
	return s.vendorRepo.FindByID(vendorID)
}
