package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillswap/backend/internal/meeting"
	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/repositories"
)

// SwapService owns the swap request lifecycle: pending is the only initial
// status, accepted and rejected are terminal, and every transition is a
// compare-and-set against the store so concurrent decisions on the same
// request have exactly one winner.
type SwapService struct {
	swapRepo    repositories.SwapRepository
	profileRepo repositories.ProfileRepository
	provider    meeting.LinkProvider
}

// NewSwapService creates a new SwapService
func NewSwapService(swapRepo repositories.SwapRepository, profileRepo repositories.ProfileRepository, provider meeting.LinkProvider) *SwapService {
	return &SwapService{
		swapRepo:    swapRepo,
		profileRepo: profileRepo,
		provider:    provider,
	}
}

// Create persists a new pending swap request from sender to receiver. The
// receiver must have a skill profile; the skill lists and schedule are
// snapshotted as-is and never change afterwards.
func (s *SwapService) Create(ctx context.Context, senderID uint, req *models.CreateSwapRequest) (*models.SwapRequest, error) {
	if req == nil || senderID == req.ReceiverID {
		return nil, ErrInvalidInput
	}

	if _, err := s.profileRepo.GetProfileByUserID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	swap := &models.SwapRequest{
		SenderID:      senderID,
		ReceiverID:    req.ReceiverID,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Message:       req.Message,
		ScheduledTime: req.ScheduledTime,
		Status:        models.SwapStatusPending,
	}
	if err := s.swapRepo.CreateSwapRequest(swap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return swap, nil
}

// Accept transitions a pending request to accepted and returns the issued
// meeting link. The link is provisioned before the transition; if the
// provider fails the request stays pending, and if the compare-and-set loses
// to a concurrent decision the caller observes ErrAlreadyProcessed.
func (s *SwapService) Accept(ctx context.Context, requestID, actingUserID uint) (*models.SwapRequest, error) {
	swap, err := s.load(requestID)
	if err != nil {
		return nil, err
	}
	if swap.ReceiverID != actingUserID {
		return nil, ErrNotAuthorized
	}
	if swap.Status.Terminal() {
		return nil, ErrAlreadyProcessed
	}

	title := fmt.Sprintf("SkillSwap session #%d", swap.ID)
	link, err := s.provider.Provision(ctx, swap.ScheduledTime, title)
	if err != nil {
		return nil, err
	}

	ok, err := s.swapRepo.CompareAndSetStatus(requestID, models.SwapStatusPending, models.SwapStatusAccepted, link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return nil, ErrAlreadyProcessed
	}

	swap.Status = models.SwapStatusAccepted
	swap.MeetLink = link
	return swap, nil
}

// Reject transitions a pending request to rejected. The meeting link is never
// touched; the error taxonomy matches Accept.
func (s *SwapService) Reject(ctx context.Context, requestID, actingUserID uint) (*models.SwapRequest, error) {
	swap, err := s.load(requestID)
	if err != nil {
		return nil, err
	}
	if swap.ReceiverID != actingUserID {
		return nil, ErrNotAuthorized
	}
	if swap.Status.Terminal() {
		return nil, ErrAlreadyProcessed
	}

	ok, err := s.swapRepo.CompareAndSetStatus(requestID, models.SwapStatusPending, models.SwapStatusRejected, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return nil, ErrAlreadyProcessed
	}

	swap.Status = models.SwapStatusRejected
	return swap, nil
}

// Cancel lets the sender withdraw their own request while it is still
// pending. The delete carries the same pending guard as the status
// transitions, so a cancel racing the receiver's decision has one winner.
func (s *SwapService) Cancel(ctx context.Context, requestID, actingUserID uint) error {
	swap, err := s.load(requestID)
	if err != nil {
		return err
	}
	if swap.SenderID != actingUserID {
		return ErrNotAuthorized
	}
	if swap.Status.Terminal() {
		return ErrAlreadyProcessed
	}

	ok, err := s.swapRepo.DeletePendingSwapRequest(requestID, actingUserID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrAlreadyProcessed
	}
	return nil
}

// Get returns a swap request visible to the acting user (sender or receiver).
func (s *SwapService) Get(requestID, actingUserID uint) (*models.SwapRequest, error) {
	swap, err := s.load(requestID)
	if err != nil {
		return nil, err
	}
	if swap.SenderID != actingUserID && swap.ReceiverID != actingUserID {
		return nil, ErrNotAuthorized
	}
	return swap, nil
}

// Inbox lists requests addressed to the user, newest first.
func (s *SwapService) Inbox(userID uint) ([]models.SwapRequest, error) {
	requests, err := s.swapRepo.GetReceivedSwapRequests(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return requests, nil
}

// Outbox lists requests the user has sent, newest first.
func (s *SwapService) Outbox(userID uint) ([]models.SwapRequest, error) {
	requests, err := s.swapRepo.GetSentSwapRequests(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return requests, nil
}

func (s *SwapService) load(requestID uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetSwapRequestByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return swap, nil
}
