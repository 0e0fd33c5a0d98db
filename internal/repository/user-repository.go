package repository

import (
	"errors"
	"log"
	"time"

	"github.com/SundayYogurt/auth_service/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByCredentials(email, password string) (*domain.User, error)
	SetOTP(userID uint, code string, expires time.Time) error
	ClearOTP(userID uint, code string) error
	ConsumeOTP(email, code string, now time.Time) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		log.Printf("create user error: %v", err)
		return nil, errors.New("failed to create user")
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		log.Printf("find user by email error: %v", err)
		return nil, errors.New("failed to find user by email")
	}

	return user, nil
}

func (r *userRepository) FindUserByCredentials(email, password string) (*domain.User, error) {
	user := &domain.User{}

	// plain equality on both columns, matching the stored credential as-is
	if err := r.db.First(user, "email = ? AND password = ?", email, password).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		log.Printf("find user by credentials error: %v", err)
		return nil, errors.New("failed to find user by credentials")
	}

	return user, nil
}

func (r *userRepository) SetOTP(userID uint, code string, expires time.Time) error {
	res := r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"otp":         code,
			"otp_expires": expires,
		})
	if res.Error != nil {
		log.Printf("set otp error: %v", res.Error)
		return errors.New("failed to set otp")
	}
	if res.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}

// ClearOTP clears the code only if the row still holds it. Used to back
// out a code whose delivery email failed.
func (r *userRepository) ClearOTP(userID uint, code string) error {
	res := r.db.Model(&domain.User{}).
		Where("id = ? AND otp = ?", userID, code).
		Updates(map[string]interface{}{
			"otp":         nil,
			"otp_expires": nil,
		})
	if res.Error != nil {
		log.Printf("clear otp error: %v", res.Error)
		return errors.New("failed to clear otp")
	}
	return nil
}

// ConsumeOTP validates and clears the code in one conditional UPDATE, so
// two concurrent verifies cannot both succeed on the same code.
func (r *userRepository) ConsumeOTP(email, code string, now time.Time) (bool, error) {
	res := r.db.Model(&domain.User{}).
		Where("email = ? AND otp = ? AND otp_expires > ?", email, code, now).
		Updates(map[string]interface{}{
			"otp":         nil,
			"otp_expires": nil,
		})
	if res.Error != nil {
		log.Printf("consume otp error: %v", res.Error)
		return false, errors.New("failed to consume otp")
	}
	return res.RowsAffected == 1, nil
}
