// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/internal/store"
	"github.com/MKhiriev/go-catalog-api/models"
)

// userService composes the user repository with the cache-aside layer.
// Reads try the cache first and report whether they were served from it;
// writes go to the repository and invalidate the affected keys afterwards,
// so a write that fails never evicts anything.
type userService struct {
	userRepository store.UserRepository
	cache          cache.Cache
	cacheTTL       time.Duration

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, c cache.Cache, cacheTTL time.Duration, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		cache:          c,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.cache.Invalidate(ctx, cache.UsersAllKey)
	return created, nil
}

// GetUser returns the user and whether it was served from cache.
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, bool, error) {
	key := cache.UserKey(id)

	if data, ok := s.cache.Get(ctx, key); ok {
		var user models.User
		if err := json.Unmarshal(data, &user); err == nil {
			return user, true, nil
		}
		logger.FromContext(ctx).Warn().Str("key", key).Msg("discarding undecodable cache entry")
		s.cache.Invalidate(ctx, key)
	}

	user, err := s.userRepository.GetUser(ctx, id)
	if err != nil {
		return models.User{}, false, err
	}

	if data, err := json.Marshal(user); err == nil {
		s.cache.Set(ctx, key, data, s.cacheTTL)
	}
	return user, false, nil
}

// GetAllUsers returns every user and whether the listing came from cache.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, bool, error) {
	if data, ok := s.cache.Get(ctx, cache.UsersAllKey); ok {
		var users []models.User
		if err := json.Unmarshal(data, &users); err == nil {
			return users, true, nil
		}
		logger.FromContext(ctx).Warn().Str("key", cache.UsersAllKey).Msg("discarding undecodable cache entry")
		s.cache.Invalidate(ctx, cache.UsersAllKey)
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(users); err == nil {
		s.cache.Set(ctx, cache.UsersAllKey, data, s.cacheTTL)
	}
	return users, false, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, cache.UserKey(id), cache.UsersAllKey)
	return nil
}
