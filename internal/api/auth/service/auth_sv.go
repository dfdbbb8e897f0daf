package authService

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/auth"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"
	jwtPkg "PortfolioBackend/pkg/jwt"
)

func (s *authService) Login(c context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to get user by email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Password comparison failed")
		return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
	}

	return s.issueToken(requestID, user)
}

func (s *authService) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to parse Google auth URL")
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

func (s *authService) UserLoginGoogle(c context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginUserResponse{}, err
	}

	// Only an already provisioned admin may sign in with Google; there is
	// no self-service registration on this site.
	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Google login for unknown email")
			return auth.LoginUserResponse{}, auth.ErrInvalidEmailOrPassword
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginUserResponse{}, err
	}

	return s.issueToken(requestID, user)
}

// ProvisionAdmin creates the single admin account from ADMIN_EMAIL,
// ADMIN_NAME and ADMIN_PASSWORD when it does not exist yet. There is no
// self-service registration, so this runs once at startup.
func (s *authService) ProvisionAdmin(c context.Context) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		return nil
	}

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	_, err = repo.Users.GetByEmail(c, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to get user by email")
		return err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to hash admin password")
		return err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to generate user ID")
		return err
	}

	now := time.Now()
	user := entity.User{
		ID:        userID,
		Email:     email,
		Name:      os.Getenv("ADMIN_NAME"),
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Users.CreateUser(c, user); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to create admin user")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"email": email,
	}).Info("Admin account provisioned")

	return nil
}

// Session resolves the identity behind a valid token against the store, so
// a token for a deleted account stops restoring the admin session.
func (s *authService) Session(c context.Context, userID string) (auth.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Session for unknown user")
			return auth.SessionResponse{}, auth.ErrUserNotFound
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by id")
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *authService) issueToken(requestID string, user entity.User) (auth.LoginUserResponse, error) {
	userData := map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}

	token, expired, err := jwtPkg.Sign(userData, time.Hour*1)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginUserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Info("Token created")

	return auth.LoginUserResponse{
		AccessToken:      token,
		ExpiresInMinutes: time.Until(time.Unix(expired, 0)).Minutes(),
	}, nil
}
