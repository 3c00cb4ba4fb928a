package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/dmitrijs2005/accountdesk/internal/server/config"
)

// TokenIssuer mints the session token handed out on login and maps it back
// to the record identifier.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
	Resolve(token string) (int64, error)
}

// Service answers account requests against a Directory. Every request
// completes after the configured response delay unless its context ends
// first, in which case nothing is changed.
type Service struct {
	dir     *Directory
	tokens  TokenIssuer
	latency time.Duration
	after   func(time.Duration) <-chan time.Time
}

// NewService constructs a Service over dir using the server config.
func NewService(dir *Directory, tokens TokenIssuer, cfg *config.Config) *Service {
	return &Service{
		dir:     dir,
		tokens:  tokens,
		latency: cfg.ResponseDelay,
		after:   time.After,
	}
}

// Login checks creds against the directory. It fails with
// common.ErrInvalidCredentials without telling which field was wrong.
func (s *Service) Login(ctx context.Context, creds Credentials) *Pending[*LoginResult] {
	return resolve(ctx, s.latency, s.after, func() (*LoginResult, error) {
		u, ok := s.dir.Authenticate(creds.Username, creds.Email, creds.Password)
		if !ok {
			return nil, common.ErrInvalidCredentials
		}

		token, err := s.tokens.Issue(u.ID)
		if err != nil {
			return nil, fmt.Errorf("error issuing token: %w", common.ErrorInternal)
		}

		return &LoginResult{Success: true, Token: token, User: u.View()}, nil
	})
}

// Register adds a new record. It fails with common.ErrUserAlreadyExists
// when the username or email is taken. No token is issued.
func (s *Service) Register(ctx context.Context, r Registration) *Pending[*RegisterResult] {
	return resolve(ctx, s.latency, s.after, func() (*RegisterResult, error) {
		u, err := s.dir.Add(r)
		if err != nil {
			return nil, err
		}
		return &RegisterResult{Success: true, Message: registeredMessage, User: u.View()}, nil
	})
}

// ForgotPassword acknowledges a reset request for a known email. Nothing is
// sent and the directory is left untouched.
func (s *Service) ForgotPassword(ctx context.Context, email string) *Pending[*ForgotPasswordResult] {
	return resolve(ctx, s.latency, s.after, func() (*ForgotPasswordResult, error) {
		if _, ok := s.dir.FindByEmail(email); !ok {
			return nil, common.ErrEmailNotFound
		}
		return &ForgotPasswordResult{Success: true, Message: resetRequestMessage}, nil
	})
}

// Profile returns the user view behind a session token issued by Login.
func (s *Service) Profile(token string) (*UserView, error) {
	id, err := s.tokens.Resolve(token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	u, ok := s.dir.FindByID(id)
	if !ok {
		return nil, common.ErrInvalidToken
	}

	v := u.View()
	return &v, nil
}
