package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"tienda/internal/config"
	"tienda/internal/domain/model"
	repo "tienda/internal/repository"
	"tienda/internal/validator"
)

type AuthUsecase struct {
	cfg          config.Config
	customerRepo repo.CustomerRepository
	cartStore    repo.CartStore
	now          func() time.Time
}

func NewAuthUsecase(cfg config.Config, customerRepo repo.CustomerRepository, cartStore repo.CartStore) *AuthUsecase {
	return &AuthUsecase{
		cfg:          cfg,
		customerRepo: customerRepo,
		cartStore:    cartStore,
		now:          time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.Customer, error) {
	if err := validator.ValidateRegister(in.Name, in.Email, in.Password); err != nil {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	phone := ""
	if strings.TrimSpace(in.Phone) != "" {
		var err error
		phone, err = validator.NormalizePhone(in.Phone)
		if err != nil {
			return model.Customer{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:        phone,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err == repo.ErrConflict {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "el correo ya está registrado")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type LoginOutput struct {
	Token    string         `json:"token"`
	Customer model.Customer `json:"cliente"`
}

// Login verifies credentials and issues the access token. The guest cart of
// the session that performed the login is discarded, not merged; the
// authenticated identity starts from its own cart.
func (u *AuthUsecase) Login(ctx context.Context, email, password, guestIdentity string) (LoginOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "correo y contraseña son obligatorios")
	}

	c, err := u.customerRepo.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "credenciales inválidas")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !c.IsActive {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "credenciales inválidas")
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "credenciales inválidas")
	}

	token, err := u.issueToken(c)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := u.customerRepo.TouchLastLogin(ctx, c.ID, u.now()); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if guestIdentity != "" {
		// Best effort; a stale guest cart expires on its own anyway.
		_ = u.cartStore.Delete(ctx, guestIdentity)
	}

	return LoginOutput{Token: token, Customer: c}, nil
}

func (u *AuthUsecase) issueToken(c model.Customer) (string, error) {
	now := u.now()
	claims := jwt.MapClaims{
		"sub":   c.ID,
		"staff": c.IsStaff,
		"iat":   now.Unix(),
		"exp":   now.Add(u.cfg.AccessTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.cfg.JWTSecret))
}

func (u *AuthUsecase) Profile(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type UpdateProfileInput struct {
	Name  string
	Email string
	Phone string
}

func (u *AuthUsecase) UpdateProfile(ctx context.Context, customerID int64, in UpdateProfileInput) (model.Customer, error) {
	c, err := u.Profile(ctx, customerID)
	if err != nil {
		return model.Customer{}, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, validator.ErrNameRequired.Error())
	}
	if !validator.EmailLike(in.Email) {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, validator.ErrInvalidEmail.Error())
	}

	phone := ""
	if strings.TrimSpace(in.Phone) != "" {
		phone, err = validator.NormalizePhone(in.Phone)
		if err != nil {
			return model.Customer{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	c.Name = strings.TrimSpace(in.Name)
	c.Email = strings.ToLower(strings.TrimSpace(in.Email))
	c.Phone = phone

	err = u.customerRepo.Update(ctx, c)
	if err == repo.ErrConflict {
		return model.Customer{}, NewHTTPError(http.StatusBadRequest, "el correo ya está registrado")
	}
	if err != nil {
		return model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}
