package service

import (
	"errors"
	"strings"

	"github.com/harborlaw/website/internal/db"
	"gorm.io/gorm"
)

var (
	ErrAttorneyNotFound   = errors.New("attorney not found")
	ErrAttorneyValidation = errors.New("attorney is missing required fields")
)

// AttorneyService wraps attorney profile operations.
type AttorneyService struct {
	db *gorm.DB
}

// NewAttorneyService creates an AttorneyService instance.
func NewAttorneyService(gdb *gorm.DB) *AttorneyService {
	return &AttorneyService{db: gdb}
}

// AttorneyInput represents fields accepted when creating or updating an
// attorney profile.
type AttorneyInput struct {
	Name           string
	Role           string
	Specialization string
	Bio            string
	ImageURL       string
	DisplayOrder   int
}

// List returns attorney profiles ordered by display order, then id.
// Search is a case-insensitive substring match on the name, store-side.
func (s *AttorneyService) List(search string) ([]db.Attorney, error) {
	query := s.db.Model(&db.Attorney{}).Order("display_order asc, id asc")

	if trimmed := strings.TrimSpace(search); trimmed != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(trimmed)+"%")
	}

	var attorneys []db.Attorney
	if err := query.Find(&attorneys).Error; err != nil {
		return nil, err
	}
	return attorneys, nil
}

// Get fetches an attorney profile by id.
func (s *AttorneyService) Get(id uint) (*db.Attorney, error) {
	var attorney db.Attorney
	if err := s.db.First(&attorney, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttorneyNotFound
		}
		return nil, err
	}
	return &attorney, nil
}

// Create persists a new attorney profile.
func (s *AttorneyService) Create(input AttorneyInput) (*db.Attorney, error) {
	name := strings.TrimSpace(input.Name)
	role := strings.TrimSpace(input.Role)
	specialization := strings.TrimSpace(input.Specialization)
	if name == "" || role == "" || specialization == "" {
		return nil, ErrAttorneyValidation
	}

	attorney := db.Attorney{
		Name:           name,
		Role:           role,
		Specialization: specialization,
		Bio:            strings.TrimSpace(input.Bio),
		ImageURL:       strings.TrimSpace(input.ImageURL),
		DisplayOrder:   input.DisplayOrder,
	}
	if err := s.db.Create(&attorney).Error; err != nil {
		return nil, err
	}
	return &attorney, nil
}

// Update applies changes to an existing attorney profile.
func (s *AttorneyService) Update(id uint, input AttorneyInput) (*db.Attorney, error) {
	attorney, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	role := strings.TrimSpace(input.Role)
	specialization := strings.TrimSpace(input.Specialization)
	if name == "" || role == "" || specialization == "" {
		return nil, ErrAttorneyValidation
	}

	attorney.Name = name
	attorney.Role = role
	attorney.Specialization = specialization
	attorney.Bio = strings.TrimSpace(input.Bio)
	attorney.ImageURL = strings.TrimSpace(input.ImageURL)
	attorney.DisplayOrder = input.DisplayOrder

	if err := s.db.Save(attorney).Error; err != nil {
		return nil, err
	}
	return attorney, nil
}

// Delete removes an attorney profile permanently.
func (s *AttorneyService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.Attorney{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttorneyNotFound
	}
	return nil
}
