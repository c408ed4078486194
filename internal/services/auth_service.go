package services

import (
	"fmt"
	"sync"

	authorizer "github.com/localnerve/authorizer-go"
	"github.com/localnerve/goldphotos/internal/config"
	"github.com/localnerve/goldphotos/internal/utils"
	"github.com/sirupsen/logrus"
)

// Session is a validated authorizer session
type Session struct {
	// UserID is the authorizer identity, used as the user's registration reference
	UserID string
}

// SessionValidator validates a session cookie for the given roles
type SessionValidator interface {
	ValidateSession(cookie string, roles []string) (*Session, error)
}

// AuthorizerService validates sessions against the Authorizer service.
// The client is created on first use.
type AuthorizerService struct {
	cfg    *config.Config
	once   sync.Once
	client *authorizer.AuthorizerClient
	err    error
}

// NewAuthorizerService creates the validator for the configured Authorizer
func NewAuthorizerService(cfg *config.Config) *AuthorizerService {
	return &AuthorizerService{cfg: cfg}
}

// Initialized reports whether the client was created successfully
func (s *AuthorizerService) Initialized() bool {
	return s.client != nil
}

func (s *AuthorizerService) init() error {
	s.once.Do(func() {
		if err := utils.PingAuthorizer(s.cfg.AuthzURL); err != nil {
			s.err = fmt.Errorf("authorizer ping failed: %w", err)
			return
		}

		redirectURL := s.cfg.AuthzURL
		logrus.WithFields(logrus.Fields{
			"url":      s.cfg.AuthzURL,
			"clientId": s.cfg.AuthzClientID,
		}).Info("initializing authorizer")

		client, err := authorizer.NewAuthorizerClient(s.cfg.AuthzClientID, s.cfg.AuthzURL, redirectURL, nil)
		if err != nil {
			s.err = fmt.Errorf("failed to create authorizer client: %w", err)
			return
		}
		s.client = client
	})
	return s.err
}

// ValidateSession validates a session cookie for the given roles
func (s *AuthorizerService) ValidateSession(cookie string, roles []string) (*Session, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	rolesPtrs := make([]*string, len(roles))
	for i := range roles {
		rolesPtrs[i] = &roles[i]
	}

	res, err := s.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolesPtrs,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid || res.User == nil {
		return nil, fmt.Errorf("session is not valid")
	}

	return &Session{UserID: res.User.ID}, nil
}
