package repositories

import (
	"errors"

	"github.com/skillswap/backend/internal/models"
	"gorm.io/gorm"
)

// SwapRepository defines the interface for swap request persistence.
// Status transitions go through CompareAndSetStatus so that two concurrent
// decisions on the same request can never both succeed.
type SwapRepository interface {
	CreateSwapRequest(req *models.SwapRequest) error
	GetSwapRequestByID(id uint) (*models.SwapRequest, error)
	GetReceivedSwapRequests(userID uint) ([]models.SwapRequest, error)
	GetSentSwapRequests(userID uint) ([]models.SwapRequest, error)
	CompareAndSetStatus(id uint, expected, next models.SwapStatus, meetLink string) (bool, error)
	DeletePendingSwapRequest(id, senderID uint) (bool, error)
}

// PostgresSwapRepository implements SwapRepository for PostgreSQL
type PostgresSwapRepository struct {
	db *gorm.DB
}

// NewPostgresSwapRepository creates a new PostgresSwapRepository
func NewPostgresSwapRepository(db *gorm.DB) *PostgresSwapRepository {
	return &PostgresSwapRepository{db: db}
}

// CreateSwapRequest persists a new swap request with status pending
func (r *PostgresSwapRepository) CreateSwapRequest(req *models.SwapRequest) error {
	req.Status = models.SwapStatusPending
	req.MeetLink = ""
	return r.db.Create(req).Error
}

// GetSwapRequestByID retrieves a swap request by ID
func (r *PostgresSwapRepository) GetSwapRequestByID(id uint) (*models.SwapRequest, error) {
	var req models.SwapRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &req, nil
}

// GetReceivedSwapRequests retrieves all swap requests addressed to a user,
// newest first
func (r *PostgresSwapRepository) GetReceivedSwapRequests(userID uint) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	if err := r.db.Where("receiver_id = ?", userID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetSentSwapRequests retrieves all swap requests a user has sent, newest first
func (r *PostgresSwapRepository) GetSentSwapRequests(userID uint) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	if err := r.db.Where("sender_id = ?", userID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CompareAndSetStatus transitions a request from expected to next as a single
// guarded UPDATE. The row filter on the current status makes the check-and-set
// atomic; a concurrent transition that already won leaves RowsAffected at zero
// and the caller gets false.
func (r *PostgresSwapRepository) CompareAndSetStatus(id uint, expected, next models.SwapStatus, meetLink string) (bool, error) {
	updates := map[string]interface{}{"status": next}
	if meetLink != "" {
		updates["meet_link"] = meetLink
	}

	res := r.db.Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeletePendingSwapRequest removes a request only while it is still pending
// and owned by senderID. The guard mirrors CompareAndSetStatus so a sender
// cancel racing a receiver decision has exactly one winner.
func (r *PostgresSwapRepository) DeletePendingSwapRequest(id, senderID uint) (bool, error) {
	res := r.db.Where("id = ? AND sender_id = ? AND status = ?", id, senderID, models.SwapStatusPending).
		Delete(&models.SwapRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
