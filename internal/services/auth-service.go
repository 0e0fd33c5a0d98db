package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SundayYogurt/auth_service/internal/domain"
	"github.com/SundayYogurt/auth_service/internal/dto"
	"github.com/SundayYogurt/auth_service/internal/helper/utils"
	"github.com/SundayYogurt/auth_service/internal/interfaces"
	"github.com/SundayYogurt/auth_service/internal/repository"
	pkgutils "github.com/SundayYogurt/auth_service/pkg/utils"
	"gorm.io/gorm"
)

// OTPValidity is how long an issued code stays usable.
const OTPValidity = 5 * time.Minute

// Expected failures. Handlers map these to success:false responses; any
// other error is a server error. Messages are deliberately generic so the
// caller cannot tell a missing account from a wrong password, or a wrong
// code from an expired one.
var (
	ErrEmailTaken         = errors.New("email might already exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
)

type AuthService interface {
	Signup(input dto.SignupRequest) error
	Login(input dto.LoginRequest) error
	Verify(input dto.VerifyRequest) error
}

type authService struct {
	repo     repository.UserRepository
	mailer   interfaces.MailSender
	producer interfaces.ProducerHandler
	now      func() time.Time
}

func NewAuthService(
	repo repository.UserRepository,
	mailer interfaces.MailSender,
	producer interfaces.ProducerHandler,
) AuthService {
	return &authService{
		repo:     repo,
		mailer:   mailer,
		producer: producer,
		now:      time.Now,
	}
}

func (s *authService) Signup(input dto.SignupRequest) error {
	email := pkgutils.NormalizeEmail(input.Email)
	password := pkgutils.TrimField(input.Password)

	// email is required; an empty password is stored as-is, matching the
	// original contract
	if email == "" {
		return ErrEmailTaken
	}

	// fast duplicate probe; the unique index remains the source of truth,
	// so a probe error just falls through to the insert
	if existing, err := s.repo.FindUserByEmail(email); err == nil && existing != nil && existing.ID != 0 {
		return ErrEmailTaken
	}

	newUser := &domain.User{
		Email:    email,
		Password: password,
	}

	usr, err := s.repo.CreateUser(newUser)
	if err != nil {
		// a racing signup loses here; same generic answer
		return ErrEmailTaken
	}

	s.publish("user.registered", dto.UserRegisteredEvent{
		UserID: usr.ID,
		Email:  usr.Email,
	})

	return nil
}

func (s *authService) Login(input dto.LoginRequest) error {
	email := pkgutils.NormalizeEmail(input.Email)
	password := pkgutils.TrimField(input.Password)

	user, err := s.repo.FindUserByCredentials(email, password)
	if err != nil || user == nil || user.ID == 0 {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return ErrInvalidCredentials
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	exp := s.now().Add(OTPValidity)

	// overwrites any still-pending code for this user
	if err := s.repo.SetOTP(user.ID, code, exp); err != nil {
		return err
	}

	if err := s.mailer.SendOTPEmail(user.Email, code); err != nil {
		// back out the code we just wrote so a failed login attempt does
		// not leave a deliverable-looking OTP behind
		if clearErr := s.repo.ClearOTP(user.ID, code); clearErr != nil {
			log.Printf("otp compensation failed for user %d: %v", user.ID, clearErr)
		}
		return fmt.Errorf("send otp email: %w", err)
	}

	s.publish("user.otp_issued", dto.OTPIssuedEvent{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: exp.Format(time.RFC3339),
	})

	return nil
}

func (s *authService) Verify(input dto.VerifyRequest) error {
	email := pkgutils.NormalizeEmail(input.Email)
	code := pkgutils.TrimField(input.Otp)

	consumed, err := s.repo.ConsumeOTP(email, code, s.now())
	if err != nil {
		return err
	}
	if !consumed {
		return ErrInvalidOTP
	}

	s.publish("user.verified", dto.UserVerifiedEvent{Email: email})

	return nil
}

func (s *authService) publish(key string, event interface{}) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	// audit stream is best-effort; never fail the request over it
	_ = s.producer.PublishMessage([]byte(key), payload)
}
