package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/anfer-esquadrias/orcamentos/internal/brx"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
)

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	return s.repo.List(ctx, req)
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new customer under a generated identifier.
func (s *Service) Create(ctx context.Context, req SaveCustomerRequest) (*Customer, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}
	customer := Customer{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		Email:   req.Email,
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &customer, nil
}

// Update overwrites the stored customer wholesale. Last write wins.
func (s *Service) Update(ctx context.Context, id string, req SaveCustomerRequest) (*Customer, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	customer := Customer{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
		Email:   req.Email,
	}
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}
	return &customer, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) checkRequest(req SaveCustomerRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	if req.Email != "" && !brx.ValidEmail(req.Email) {
		return ErrInvalidEmail
	}
	if req.Contact != "" && !brx.ValidPhone(req.Contact) {
		return ErrInvalidPhone
	}
	return nil
}
