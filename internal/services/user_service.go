package services

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/eventmarket/internal/apperr"
	"github.com/joshua-takyi/eventmarket/internal/helpers"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/supabase-community/gotrue-go/types"
)

type RegisterRequest struct {
	Name        string          `json:"name" validate:"required"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	PhoneNumber string          `json:"phone_number"`
	Role        models.UserRole `json:"role"`
}

// UserService delegates credentials to the identity provider and keeps the
// profile document in the document store under the provider UID.
type UserService struct {
	identity models.IdentityRepo
	users    models.UserRepo
	notifier *NotificationService
	cld      *cloudinary.Cloudinary
}

func NewUserService(identity models.IdentityRepo, users models.UserRepo, notifier *NotificationService, cld *cloudinary.Cloudinary) *UserService {
	return &UserService{
		identity: identity,
		users:    users,
		notifier: notifier,
		cld:      cld,
	}
}

func (us *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "invalid registration data", err)
	}
	if !helpers.IsPasswordStrong(req.Password) {
		return nil, apperr.New(apperr.InvalidInput, "password is not strong enough")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, apperr.New(apperr.InvalidInput, "invalid role")
	}

	res, err := us.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "registration failed", err)
	}

	now := time.Now()
	user := &models.User{
		ID:          res.ID.String(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := us.users.CreateUser(ctx, user)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to save user profile", err)
	}

	us.notifier.SendWelcome(created.Email, created.Name)

	return created, nil
}

func (us *UserService) Authenticate(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "invalid email format", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, apperr.Wrap(apperr.InvalidInput, "invalid password format", err)
	}

	resp, err := us.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Forbidden, "authentication failed", err)
	}
	return resp, nil
}

func (us *UserService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperr.New(apperr.InvalidInput, "refresh token is required")
	}
	resp, err := us.identity.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.Forbidden, "token refresh failed", err)
	}
	return resp, nil
}

func (us *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := us.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to load user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return user, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	fields["updated_at"] = time.Now()

	updated, err := us.users.UpdateUser(ctx, id, fields)
	if err != nil {
		return nil, apperr.Wrap(apperr.Transient, "failed to update user", err)
	}
	return updated, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := us.users.DeleteUser(ctx, id); err != nil {
		return apperr.Wrap(apperr.Transient, "failed to delete user", err)
	}
	return nil
}

// UploadProfilePicture pushes the file to the blob store and records the
// hosted URL on the profile document.
func (us *UserService) UploadProfilePicture(ctx context.Context, userID, imagePath string) (string, error) {
	if us.cld == nil {
		return "", apperr.New(apperr.Unsupported, "blob store is not configured")
	}

	urls, _, err := helpers.UploadImages(ctx, us.cld, []string{imagePath}, helpers.ProfileFolder)
	if err != nil {
		return "", apperr.Wrap(apperr.Transient, "failed to upload profile picture", err)
	}
	if len(urls) == 0 {
		return "", apperr.New(apperr.InvalidInput, "no image provided")
	}

	if _, err := us.UpdateUser(ctx, userID, map[string]interface{}{"profile_picture_url": urls[0]}); err != nil {
		return "", err
	}
	return urls[0], nil
}
