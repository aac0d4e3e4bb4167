package service

import (
	"context"
	"errors"

	"github.com/standup/backend/internal/model"
	"github.com/standup/backend/internal/repository"
)

// UserServiceImpl は UserService の実装
type UserServiceImpl struct {
	repo repository.UserRepository
}

// NewUserService は UserServiceImpl を生成する
func NewUserService(repo repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

// GetByID は ID でユーザーを取得する
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update は対象ユーザーの設定を更新する。本人または管理者のみ許可される。
func (s *UserServiceImpl) Update(ctx context.Context, targetID, actingUsername string, changes UserChanges) (*model.User, error) {
	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	actor, err := s.repo.GetByUsername(ctx, actingUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	if actor.ID != target.ID && !actor.IsAdmin {
		return nil, ErrForbidden
	}

	if changes.Name != nil {
		target.Name = *changes.Name
	}
	if changes.Email != nil {
		target.Email = *changes.Email
	}
	if changes.GitHubHandle != nil {
		target.GitHubHandle = *changes.GitHubHandle
	}

	if err := s.repo.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}
