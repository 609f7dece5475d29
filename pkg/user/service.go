package user

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"wellnesshub/pkg/authsess"
	"wellnesshub/pkg/generator"
)

type ServiceInterface interface {
	Register(username, password string) (*User, error)
	Login(username, password string) (*User, error)
	Logout(userID string) error
}

type Service struct {
	Repo    Repository
	Session authsess.Repository
}

func NewService(repo Repository, session authsess.Repository) *Service {
	return &Service{Repo: repo, Session: session}
}

func (s *Service) Register(username, password string) (*User, error) {
	exist, err := s.Repo.FindByUsername(username)
	if exist != nil && err == nil {
		return nil, errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %s", err)
	}

	userID, err := generator.GenerateRandomID(24)
	if err != nil {
		return nil, fmt.Errorf("UserID gen error: %s", err)
	}

	user := &User{
		ID:       userID,
		Username: username,
		Password: string(hashedPassword),
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	if err := s.openSession(user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(username, password string) (*User, error) {
	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := s.openSession(user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Logout(userID string) error {
	return s.Session.Invalidate(userID)
}

func (s *Service) openSession(userID string) error {
	sessionID, err := generator.GenerateRandomID(24)
	if err != nil {
		return fmt.Errorf("SessionID gen error: %s", err)
	}
	if _, err := s.Session.Create(userID, sessionID); err != nil {
		return fmt.Errorf("failed to create session: %s", err)
	}
	return nil
}
