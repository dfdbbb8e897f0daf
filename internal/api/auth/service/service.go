package authService

import (
	"net/url"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/internal/api/auth"
	authRepository "PortfolioBackend/internal/api/auth/repository"
	"PortfolioBackend/pkg/bcrypt"
	"PortfolioBackend/pkg/google"
	"PortfolioBackend/pkg/utils"
)

type IAuthService interface {
	Login(ctx context.Context, req auth.LoginUserRequest) (auth.LoginUserResponse, error)
	LoginGoogle() (*url.URL, error)
	UserLoginGoogle(ctx context.Context, req auth.LoginUserGoogle) (auth.LoginUserResponse, error)
	ProvisionAdmin(ctx context.Context) error
	Session(ctx context.Context, userID string) (auth.SessionResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepo       authRepository.Repository
	bcryptUtils    bcrypt.IBcrypt
	googleProvider google.ItfGoogle
	utils          utils.IUtils
}

func NewAuthService(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	googleProvider google.ItfGoogle,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepo:       authRepo,
		bcryptUtils:    bcryptUtils,
		googleProvider: googleProvider,
		utils:          utils,
	}
}
