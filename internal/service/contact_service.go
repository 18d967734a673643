package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/harborlaw/website/internal/db"
	"github.com/harborlaw/website/internal/notify"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound   = errors.New("contact submission not found")
	ErrContactValidation = errors.New("contact submission is missing required fields")
	ErrInvalidStatus     = errors.New("unknown contact submission status")
)

// ContactService handles form intake and admin triage of submissions.
type ContactService struct {
	db       *gorm.DB
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewContactService creates a ContactService. notifier may be a NopNotifier
// when outbound mail is not configured.
func NewContactService(gdb *gorm.DB, notifier notify.Notifier, logger *zap.Logger) *ContactService {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{db: gdb, notifier: notifier, logger: logger}
}

// ContactInput represents a public form submission.
type ContactInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	ServiceType string
	Message     string
}

// Submit validates the input, stores one submission row with status new,
// then dispatches a best-effort notification. The notification never blocks
// or fails the submission: once the row is written the caller gets success,
// and a delivery failure is only logged.
func (s *ContactService) Submit(input ContactInput) (*db.ContactSubmission, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if firstName == "" || lastName == "" || email == "" || message == "" {
		return nil, ErrContactValidation
	}

	submission := db.ContactSubmission{
		Reference:   uuid.NewString(),
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		Phone:       strings.TrimSpace(input.Phone),
		ServiceType: strings.TrimSpace(input.ServiceType),
		Message:     message,
		Status:      db.ContactStatusNew,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}

	if err := s.notifier.NotifySubmission(&submission); err != nil {
		s.logger.Warn("contact notification failed",
			zap.String("reference", submission.Reference),
			zap.Error(err))
	}

	return &submission, nil
}

// List returns submissions for admin triage, newest first. status filters
// exactly when non-empty; search matches name or email case-insensitively.
func (s *ContactService) List(status, search string) ([]db.ContactSubmission, error) {
	query := s.db.Model(&db.ContactSubmission{}).Order("created_at desc")

	if status != "" {
		if !db.ValidContactStatus(status) {
			return nil, ErrInvalidStatus
		}
		query = query.Where("status = ?", status)
	}

	if trimmed := strings.TrimSpace(search); trimmed != "" {
		like := "%" + strings.ToLower(trimmed) + "%"
		query = query.Where(
			"lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?",
			like, like, like,
		)
	}

	var submissions []db.ContactSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

// Get fetches a submission by id.
func (s *ContactService) Get(id uint) (*db.ContactSubmission, error) {
	var submission db.ContactSubmission
	if err := s.db.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &submission, nil
}

// UpdateStatus moves a submission to any known status. There is no
// transition graph; new, read, and resolved are all reachable from each
// other.
func (s *ContactService) UpdateStatus(id uint, status string) (*db.ContactSubmission, error) {
	if !db.ValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}

	submission, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	submission.Status = status
	if err := s.db.Save(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// Delete removes a submission permanently.
func (s *ContactService) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&db.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
