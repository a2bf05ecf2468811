package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"envios-registry/internal/features/shipments/domain"
	"envios-registry/internal/features/shipments/ports"
)

// ErrShipmentNotFound is returned when no shipment matches the tracking number.
var ErrShipmentNotFound = errors.New("shipment not found")

// ErrSenderNotFound is returned when the sender is not a registered customer.
var ErrSenderNotFound = errors.New("sender not registered")

// ShipmentServiceImpl implements ports.ShipmentService.
type ShipmentServiceImpl struct {
	repo    ports.ShipmentRepository
	senders ports.SenderDirectory
}

// NewShipmentService creates a new ShipmentServiceImpl.
func NewShipmentService(repo ports.ShipmentRepository, senders ports.SenderDirectory) *ShipmentServiceImpl {
	return &ShipmentServiceImpl{
		repo:    repo,
		senders: senders,
	}
}

// Register creates a shipment for a registered sender and stores it. The
// send date is caller supplied and may lie in the past or future; the
// opening history entry is stamped with the current wall clock.
func (s *ShipmentServiceImpl) Register(ctx context.Context, sendDate time.Time, recipient domain.Recipient, senderID string) (*domain.Shipment, error) {
	ok, err := s.senders.HasCustomer(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to check sender: %w", err)
	}
	if !ok {
		return nil, ErrSenderNotFound
	}

	shipment := domain.NewShipment(sendDate, recipient, senderID)

	if err := s.repo.InsertShipment(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service: failed to insert shipment: %w", err)
	}

	return shipment, nil
}

// AdvanceStatus appends one history entry and moves the shipment to the
// new status. Any status may follow any other, including repeats.
func (s *ShipmentServiceImpl) AdvanceStatus(ctx context.Context, trackingNumber string, newStatus domain.ShipmentStatus, note string) (*domain.Shipment, error) {
	shipment, err := s.repo.FindShipment(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up shipment: %w", err)
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	if err := shipment.AdvanceStatus(newStatus, note); err != nil {
		return nil, err
	}

	if err := s.repo.SaveShipment(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service: failed to save shipment: %w", err)
	}

	return shipment, nil
}

// Find returns the shipment with the given tracking number.
func (s *ShipmentServiceImpl) Find(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	shipment, err := s.repo.FindShipment(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up shipment: %w", err)
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}

	return shipment, nil
}

// BySender returns every shipment originated by the given customer.
func (s *ShipmentServiceImpl) BySender(ctx context.Context, senderID string) ([]*domain.Shipment, error) {
	shipments, err := s.repo.ShipmentsBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list shipments: %w", err)
	}

	return shipments, nil
}

// FindMany resolves every distinct tracking number in the input. Numbers
// without a shipment map to nil; duplicated numbers collapse to one entry.
func (s *ShipmentServiceImpl) FindMany(ctx context.Context, trackingNumbers []string) (map[string]*domain.Shipment, error) {
	results := make(map[string]*domain.Shipment, len(trackingNumbers))
	for _, number := range trackingNumbers {
		if _, seen := results[number]; seen {
			continue
		}

		shipment, err := s.repo.FindShipment(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("service: failed to look up shipment: %w", err)
		}
		results[number] = shipment
	}

	return results, nil
}

// Report aggregates the shipments whose send date falls inside the
// inclusive day range. An empty range, including start after end, yields
// an all-zero report.
func (s *ShipmentServiceImpl) Report(ctx context.Context, start, end time.Time) (*domain.Report, error) {
	shipments, err := s.repo.AllShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list shipments: %w", err)
	}

	report := domain.NewReport()
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var (
		deliveryTotal time.Duration
		timedCount    int
	)

	for _, shipment := range shipments {
		day := truncateToDay(shipment.SendDate)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}

		report.TotalShipments++
		report.StatusCounts[shipment.Status]++
		report.CityCounts[shipment.Recipient.City]++

		if shipment.Status != domain.StatusDelivered {
			continue
		}
		report.DeliveredCount++

		// A delivered shipment without a delivery entry in its history
		// counts above but contributes nothing to the average.
		deliveredAt, ok := shipment.DeliveredAt()
		if !ok {
			continue
		}
		deliveryTotal += deliveredAt.Sub(shipment.CreatedAt())
		timedCount++
	}

	if timedCount > 0 {
		report.AvgDeliveryHours = deliveryTotal.Hours() / float64(timedCount)
	}

	return report, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
