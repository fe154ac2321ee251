package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService is the identity boundary. It issues tokens whose claims
// carry the caller's role and role-specific actor id, so every later
// request resolves its Actor once in the middleware instead of probing
// role tables per call.
type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        string // customer | restaurant | driver

	// restaurant profile (role == restaurant)
	RestaurantName string
	Address        string
	Suburb         string
	State          string
	Postcode       string

	// driver profile (role == driver)
	LicenseNumber string
	CarPlate      string
}

func (s *AuthService) Register(in *RegisterIn) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Role:        in.Role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		switch in.Role {
		case "restaurant":
			rs := &entity.Restaurant{
				UserID: user.ID, Name: in.RestaurantName,
				Address: in.Address, Suburb: in.Suburb,
				State: in.State, Postcode: in.Postcode,
			}
			return s.UserRepo.CreateRestaurant(tx, rs)
		case "driver":
			d := &entity.Driver{
				UserID: user.ID, LicenseNumber: in.LicenseNumber, CarPlate: in.CarPlate,
			}
			return s.UserRepo.CreateDriver(tx, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	actorID, err := s.resolveActorID(user)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, actorID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

// resolveActorID maps a user onto the id the core reasons about:
// customers act as their user id, restaurant users as their restaurant
// id, drivers as their driver id.
func (s *AuthService) resolveActorID(user *entity.User) (uint, error) {
	switch user.Role {
	case "restaurant":
		rs, err := s.UserRepo.FindRestaurantByUserID(user.ID)
		if err != nil {
			return 0, err
		}
		if rs == nil {
			return 0, errors.New("restaurant profile missing")
		}
		return rs.ID, nil
	case "driver":
		d, err := s.UserRepo.FindDriverByUserID(user.ID)
		if err != nil {
			return 0, err
		}
		if d == nil {
			return 0, errors.New("driver profile missing")
		}
		return d.ID, nil
	default:
		return user.ID, nil
	}
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}
