package service

import (
	"context"

	"cozastore-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.TokenPair, error)
}
