package services_test

import (
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/dto"
)

func (s *serviceSuite) TestRegisterAndAuthenticate() {
	user, err := s.users.CreateUser(s.ctx, dto.RegisterRequest{Username: " Alice ", Password: "s3cret-pass", Name: "Alice", Email: "alice@example.com"})
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.NotEqual("s3cret-pass", user.PasswordHash)
	s.Require().NotNil(user.Email)

	_, err = s.users.CreateUser(s.ctx, dto.RegisterRequest{Username: "ALICE", Password: "another-pass", Name: "Other"})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	got, err := s.users.AuthenticateUser(s.ctx, "alice", "s3cret-pass")
	s.Require().NoError(err)
	s.Equal(user.UserID, got.UserID)

	_, err = s.users.AuthenticateUser(s.ctx, "alice", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = s.users.AuthenticateUser(s.ctx, "bob", "whatever")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *serviceSuite) TestFindOrCreateGoogleUser() {
	info := domain.GoogleUserInfo{ID: "g-123", Email: "g@example.com", Name: "Gee"}

	first, err := s.users.FindOrCreateGoogleUser(s.ctx, info)
	s.Require().NoError(err)
	again, err := s.users.FindOrCreateGoogleUser(s.ctx, info)
	s.Require().NoError(err)
	s.Equal(first.UserID, again.UserID)

	byID, err := s.users.GetUserByID(s.ctx, first.UserID)
	s.Require().NoError(err)
	s.Equal("Gee", byID.Name)

	_, err = s.users.AuthenticateUser(s.ctx, first.Username, "")
	s.ErrorIs(err, apperrors.ErrUnauthorized, "google accounts have no password")

	_, err = s.users.FindOrCreateGoogleUser(s.ctx, domain.GoogleUserInfo{})
	s.ErrorIs(err, apperrors.ErrUnauthorized)
}
