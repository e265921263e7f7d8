package authhandler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"staffhub-backend/db"
	usersstore "staffhub-backend/lib/users/store"
	authutils "staffhub-backend/lib/utils/auth-utils"
	"staffhub-backend/models"
	authapimodels "staffhub-backend/models/api/auth"
	userapimodels "staffhub-backend/models/api/users"
	dbmodels "staffhub-backend/models/db"
	"staffhub-backend/redisclient"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (id string, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Logout(ctx context.Context, jti string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, jti string) bool
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

const revokedTokenKeyPrefix = "auth:revoked:"

var ErrInvalidCredentials = errors.New("invalid email or password")

// Register bootstraps accounts. The first registered user becomes the
// organization owner; every later self-registration is staff. Elevated
// roles are only assigned through the HR-gated users API.
func (i impl) Register(data authapimodels.RegisterRequest) (string, error) {
	exist, err := i.usersStore.ExistByEmail(data.Email)
	if err != nil {
		return "", err
	}
	if exist {
		return "", errors.New("a user with this email already exists")
	}
	role := models.StaffRole
	count, err := i.usersStore.ListCount(userapimodels.UserFilter{})
	if err != nil {
		return "", err
	}
	if count == 0 {
		role = models.OwnerRole
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return "", errors.Wrap(err, "password hashing failed")
	}
	rec := dbmodels.User{
		Email:        data.Email,
		PasswordHash: hash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         role,
		IsActive:     true,
	}
	return i.usersStore.Create(rec)
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		return authapimodels.JWTResponse{}, ErrInvalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "token issue failed")
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "refresh token issue failed")
	}
	if err = i.usersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()}); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("failed to store last login")
	}
	return authapimodels.JWTResponse{
		AccessToken:  token,
		RefreshToken: refresh,
	}, nil
}

// Logout stores the token id in redis for the token's remaining
// lifetime; expired tokens need no revocation entry.
func (i impl) Logout(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return redisclient.Client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

func (i impl) IsTokenRevoked(ctx context.Context, jti string) bool {
	exists, err := redisclient.Client.Exists(ctx, revokedTokenKeyPrefix+jti).Result()
	if err != nil {
		// fail closed would lock everyone out on a redis outage; a
		// revoked-but-accepted token is the lesser harm here
		log.WithError(err).Warn("revocation check failed")
		return false
	}
	return exists > 0
}
