package services

import (
	"context"
	"errors"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"

	"github.com/google/uuid"
)

type AddressService struct {
	addressRepo repositories.AddressRepository
}

func NewAddressService(addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
	}
}

type CreateAddressRequest struct {
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Country      string `json:"country" binding:"required"`
	IsDefault    bool   `json:"is_default"`
}

type UpdateAddressRequest struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	IsDefault    *bool  `json:"is_default"`
}

func (s *AddressService) CreateAddress(ctx context.Context, userID string, req *CreateAddressRequest) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	// If this is set as default, unset other default addresses
	if req.IsDefault {
		if err := s.addressRepo.UnsetDefaultAddresses(ctx, userUUID); err != nil {
			return nil, err
		}
	}

	address := &models.Address{
		UserID:       userUUID,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		IsDefault:    req.IsDefault,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

// GetAddresses lists the user's addresses, default first.
func (s *AddressService) GetAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	return s.addressRepo.GetByUserID(ctx, userUUID)
}

func (s *AddressService) UpdateAddress(ctx context.Context, userID, addressID string, req *UpdateAddressRequest) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return nil, errors.New("invalid address ID")
	}

	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Verify address belongs to user
	if address.UserID != userUUID {
		return nil, errors.New("address does not belong to user")
	}

	if req.AddressLine1 != "" {
		address.AddressLine1 = req.AddressLine1
	}
	if req.AddressLine2 != "" {
		address.AddressLine2 = req.AddressLine2
	}
	if req.City != "" {
		address.City = req.City
	}
	if req.State != "" {
		address.State = req.State
	}
	if req.PostalCode != "" {
		address.PostalCode = req.PostalCode
	}
	if req.Country != "" {
		address.Country = req.Country
	}
	if req.IsDefault != nil {
		if *req.IsDefault {
			if err := s.addressRepo.UnsetDefaultAddresses(ctx, userUUID); err != nil {
				return nil, err
			}
		}
		address.IsDefault = *req.IsDefault
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return errors.New("invalid address ID")
	}

	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if address.UserID != userUUID {
		return errors.New("address does not belong to user")
	}

	return s.addressRepo.Delete(ctx, id)
}

func (s *AddressService) SetDefaultAddress(ctx context.Context, userID, addressID string) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return nil, errors.New("invalid address ID")
	}

	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if address.UserID != userUUID {
		return nil, errors.New("address does not belong to user")
	}

	if err := s.addressRepo.UnsetDefaultAddresses(ctx, userUUID); err != nil {
		return nil, err
	}

	address.IsDefault = true
	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}
