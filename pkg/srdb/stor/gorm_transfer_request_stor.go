package stor

import (
	"errors"
	"fmt"
	"time"

	"github.com/coffeetrail/stockrelay/pkg/srdb/srmodel"
	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
)

type GormTransferRequestStor struct {
	db *gorm.DB
}

func NewGormTransferRequestStor(db *gorm.DB) *GormTransferRequestStor {
	return &GormTransferRequestStor{db: db}
}

func (s *GormTransferRequestStor) CreateTransferRequest(tr *srmodel.TransferRequest) (*srmodel.TransferRequest, error) {
	var (
		err error
	)

	if tr.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	tr.Status = srmodel.StatusPending

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(tr).Error
	})

	if err != nil {
		return nil, err
	}

	return tr, nil
}

func (s *GormTransferRequestStor) GetTransferRequestByID(id int) (*srmodel.TransferRequest, error) {
	var tr srmodel.TransferRequest
	err := s.db.Where("id = ?", id).First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (s *GormTransferRequestStor) GetTransferRequestByUUID(trUUID string) (*srmodel.TransferRequest, error) {
	var tr srmodel.TransferRequest
	err := s.db.Where("uuid = ?", trUUID).First(&tr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (s *GormTransferRequestStor) ListPendingForDestination(location string) ([]srmodel.TransferRequest, error) {
	var transferRequests []srmodel.TransferRequest
	err := s.db.Where("destination_location = ? and status = ?", location, srmodel.StatusPending).
		Order("created_at desc").
		Find(&transferRequests).Error
	return transferRequests, err
}

func (s *GormTransferRequestStor) ListTransferRequests(filter ListFilter) ([]srmodel.TransferRequest, error) {
	var transferRequests []srmodel.TransferRequest

	query := s.db
	if len(filter.Statuses) != 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if !filter.CreatedAfter.IsZero() {
		query = query.Where("created_at >= ?", filter.CreatedAfter)
	}

	err := query.Order("created_at desc").Find(&transferRequests).Error
	return transferRequests, err
}

func (s *GormTransferRequestStor) ApplyDecision(id int, decision Decision) (*srmodel.TransferRequest, error) {
	now := time.Now()

	updates := map[string]interface{}{
		"status":     decision.Status,
		"notes":      decision.Notes,
		"updated_at": now,
	}

	switch decision.Status {
	case srmodel.StatusReceived:
		updates["received_at"] = now
	case srmodel.StatusDeclined:
		updates["declined_at"] = now
	default:
		return nil, fmt.Errorf("decision status must be terminal, got %q", decision.Status)
	}

	// The update is conditioned on the record still being pending so that
	// two concurrent decisions can never both apply.
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		result := tx.Model(&srmodel.TransferRequest{}).
			Where("id = ? and status = ?", id, srmodel.StatusPending).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&srmodel.TransferRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrAlreadyProcessed
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetTransferRequestByID(id)
}
