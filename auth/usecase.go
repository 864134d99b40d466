package auth

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/ucdef"
)

var _ ucdef.UserAction[*LoginInput, *TokenPair] = (*Login)(nil)

var _ ucdef.UserAction[*RefreshInput, *TokenPair] = (*Refresh)(nil)

// LoginInput carries user credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required,alphanum"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login exchanges credentials for a token pair.
type Login struct {
	svc *Service
}

func NewLogin(svc *Service) *Login {
	return &Login{svc: svc}
}

func (uc *Login) OperationID() string {
	return "auth.login"
}

func (uc *Login) Execute(ctx context.Context, in *LoginInput) (*TokenPair, error) {
	pair, err := uc.svc.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return pair, nil
}

// RefreshInput carries the opaque refresh token issued on login.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh rotates a refresh token into a fresh token pair.
type Refresh struct {
	svc *Service
}

func NewRefresh(svc *Service) *Refresh {
	return &Refresh{svc: svc}
}

func (uc *Refresh) OperationID() string {
	return "auth.refresh"
}

func (uc *Refresh) Execute(ctx context.Context, in *RefreshInput) (*TokenPair, error) {
	pair, err := uc.svc.Refresh(ctx, in.RefreshToken)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return pair, nil
}
