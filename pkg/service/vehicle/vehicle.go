// Package vehicle provides business logic for the vehicle catalog: upload,
// listing, image retrieval, and deletion.
package vehicle

import (
	"context"
	"log/slog"
	"time"

	"github.com/vehicleq/vehicleq/pkg/domain"
	"github.com/vehicleq/vehicleq/pkg/dto"
	"github.com/vehicleq/vehicleq/pkg/imaging"
	"github.com/vehicleq/vehicleq/pkg/repository"
)

// timestampLayout is the string form stored for creation times. Lexicographic
// order on this layout matches chronological order.
const timestampLayout = "2006-01-02 15:04:05"

// recordZone is the fixed timezone applied to creation timestamps.
var recordZone = loadRecordZone()

func loadRecordZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// tzdata unavailable; IST has no DST so a fixed offset is exact.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// Service provides vehicle catalog operations backed by the vehicle
// repository.
type Service struct {
	repo   repository.Vehicle
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Service with a vehicle repository and logger.
func New(repo repository.Vehicle, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Upload re-encodes the submitted photograph through the image codec and
// persists a new vehicle record with a server-assigned timestamp. No record
// is created when the codec rejects the payload. The returned summary never
// carries image bytes.
func (s *Service) Upload(
	ctx context.Context,
	userID int64,
	number, owner string,
	contentType string,
	data []byte,
) (*dto.VehicleRead, error) {
	encoded, err := imaging.Process(contentType, data)
	if err != nil {
		s.logger.Warn("upload rejected by image codec",
			"user_id", userID, "content_type", contentType, "error", err)
		return nil, err
	}

	v, err := s.repo.Create(ctx, &dto.VehicleCreate{
		Number:    number,
		Owner:     owner,
		Image:     encoded,
		Timestamp: s.now().In(recordZone).Format(timestampLayout),
		UserID:    userID,
	})
	if err != nil {
		s.logger.Error("vehicle create failed", "user_id", userID, "error", err)
		return nil, err
	}
	s.logger.Info("vehicle uploaded",
		"id", v.ID, "number", v.Number, "user_id", userID, "image_bytes", len(encoded))
	return v, nil
}

// List returns all vehicle records' metadata, newest first.
func (s *Service) List(ctx context.Context) ([]*dto.VehicleRead, error) {
	return s.repo.List(ctx)
}

// ListForUser returns the metadata of records uploaded under the given user
// id, newest first. No ownership check is performed against the caller.
func (s *Service) ListForUser(
	ctx context.Context,
	userID int64,
) ([]*dto.VehicleRead, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Image returns the stored JPEG payload for a record. Missing records and
// records without a payload both yield domain.ErrImageNotFound.
func (s *Service) Image(ctx context.Context, id int64) ([]byte, error) {
	data, err := s.repo.Image(ctx, id)
	if err != nil {
		s.logger.Error("image lookup failed", "id", id, "error", err)
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.ErrImageNotFound
	}
	return data, nil
}

// Delete removes a vehicle record. With in-record image storage the payload
// is discarded atomically with the row; the returned flag reports whether a
// payload existed.
func (s *Service) Delete(ctx context.Context, id int64) (imageRemoved bool, err error) {
	v, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.Error("vehicle lookup failed", "id", id, "error", err)
		return false, err
	}
	if v == nil {
		return false, domain.ErrVehicleNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("vehicle delete failed", "id", id, "error", err)
		return false, err
	}
	s.logger.Info("vehicle deleted", "id", id)
	return v.HasImage, nil
}
