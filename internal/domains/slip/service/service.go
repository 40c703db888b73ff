package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Slip=MockSlipService

import (
	"context"
	"fmt"
	"slices"
	"stayadmin/config"
	"stayadmin/infras/otel"
	"stayadmin/infras/s3"
	"stayadmin/internal/domains/slip/model"
	"stayadmin/internal/domains/slip/model/dto"
	"stayadmin/internal/domains/slip/reconciler"
	"stayadmin/internal/domains/slip/repository"
	"stayadmin/shared"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/failure"
	"stayadmin/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const bytesPerMB = 1 << 20

var slipExtensions = map[string]string{
	constant.ContentTypeJPEG: ".jpg",
	constant.ContentTypeJPG:  ".jpg",
	constant.ContentTypePNG:  ".png",
}

// Slip is the evidence store. Methods ending in Tx run inside the caller's transaction
// and expect the owning booking row to be locked already.
type Slip interface {
	Upload(ctx context.Context, req dto.UploadSlipRequest) (dto.UploadSlipResponse, error)
	ViewURL(ctx context.Context, imageReference string) string
	ListForBooking(ctx context.Context, bookingID string) ([]model.Slip, error)
	ListForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) ([]model.Slip, error)
	ResolveTx(ctx context.Context, tx *sqlx.Tx, bookingID, slipID string) (model.Slip, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, slipID string) (model.Slip, error)
	AttachTx(ctx context.Context, tx *sqlx.Tx, bookingID string, req dto.AttachSlipRequest) (model.Slip, error)
	ApplyTx(ctx context.Context, tx *sqlx.Tx, tr reconciler.Transition) error
	SetPrimaryTx(ctx context.Context, tx *sqlx.Tx, tr reconciler.Transition) error
	ToResponses(ctx context.Context, slips []model.Slip) []dto.SlipResponse
}

type serviceImpl struct {
	repo repository.Slip
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Slip, cfg *config.Config, otel otel.Otel, s3 s3.S3) Slip {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func filterByBooking(bookingID string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadSlipRequest) (res dto.UploadSlipResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadSlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Slip == nil || req.SlipFile == nil {
		return res, failure.BadRequestFromString("slip image is required")
	}

	contentType := req.Slip.Header.Get(constant.RequestHeaderContentType)

	ext, ok := slipExtensions[contentType]
	if !ok {
		return res, failure.BadRequestFromString("slip must be a JPEG or PNG image")
	}

	if maxSize := int64(s.cfg.Slip.MaxSizeMB * bytesPerMB); maxSize > 0 && req.Slip.Size > maxSize {
		return res, failure.BadRequestFromString(fmt.Sprintf("slip must not exceed %g MB", s.cfg.Slip.MaxSizeMB))
	}

	key, err := s.s3.UploadFile(ctx, s.cfg.Slip.Directory, uuid.NewString()+ext, contentType, req.SlipFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload slip image")

		return res, fmt.Errorf("failed to upload slip image: %w", err)
	}

	res.ImageReference = key
	res.ViewURL = s.ViewURL(ctx, key)

	return res, nil
}

// ViewURL presigns a read link for the admin projection. An unsignable reference
// degrades to the public URL instead of failing the whole read.
func (s *serviceImpl) ViewURL(ctx context.Context, imageReference string) string {
	if imageReference == constant.Empty {
		return constant.Empty
	}

	expire := time.Duration(s.cfg.Slip.PresignExpireMin) * time.Minute

	url, err := s.s3.PresignGetURL(ctx, imageReference, expire)
	if err != nil {
		log.Warn().Err(err).Str("reference", imageReference).Msg("failed to presign slip url")

		return s.s3.PublicURL(imageReference)
	}

	return url
}

func listParams() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldPosition,
		SortDir: gDto.SortDirAsc,
	}
}

func sortSlips(slips []model.Slip) []model.Slip {
	slices.SortStableFunc(slips, model.ComparePrimaryFirst)

	return slips
}

func (s *serviceImpl) ListForBooking(ctx context.Context, bookingID string) (slips []model.Slip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSlips")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slips, err = s.repo.GetAll(ctx, listParams(), filterByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to list slips")

		return nil, fmt.Errorf("failed to list slips: %w", err)
	}

	return sortSlips(slips), nil
}

func (s *serviceImpl) ListForBookingTx(ctx context.Context, tx *sqlx.Tx, bookingID string) (slips []model.Slip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSlipsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slips, err = s.repo.GetAllTx(ctx, tx, listParams(), filterByBooking(bookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to list slips")

		return nil, fmt.Errorf("failed to list slips: %w", err)
	}

	return sortSlips(slips), nil
}

// ResolveTx locks the addressed slip. An empty slipID addresses the primary slip.
func (s *serviceImpl) ResolveTx(ctx context.Context, tx *sqlx.Tx, bookingID, slipID string) (slip model.Slip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveSlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := filterByBooking(bookingID)

	if slipID == constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldIsPrimary,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	} else {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    slipID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	slip, found, err := s.repo.GetTx(ctx, tx, true, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Str("slip_id", slipID).Msg("failed to get slip")

		return slip, fmt.Errorf("failed to get slip: %w", err)
	}

	if !found {
		if slipID == constant.Empty {
			return slip, failure.NotFound("booking has no slip")
		}

		return slip, failure.NotFound("slip not found")
	}

	return slip, nil
}

func (s *serviceImpl) GetTx(ctx context.Context, tx *sqlx.Tx, slipID string) (slip model.Slip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slip, found, err := s.repo.GetTx(ctx, tx, false, shared.FilterByID(slipID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("slip_id", slipID).Msg("failed to get slip")

		return slip, fmt.Errorf("failed to get slip: %w", err)
	}

	if !found {
		return slip, failure.NotFound("slip not found")
	}

	return slip, nil
}

// AttachTx appends a slip in upload order. The first slip of a booking becomes primary.
func (s *serviceImpl) AttachTx(ctx context.Context, tx *sqlx.Tx, bookingID string, req dto.AttachSlipRequest) (slip model.Slip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachSlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, filterByBooking(bookingID), model.FieldID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to count slips")

		return slip, fmt.Errorf("failed to count slips: %w", err)
	}

	slip = req.ToModel(bookingID, len(existing), timezone.Now())

	if err = s.repo.InsertTx(ctx, tx, slip); err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to insert slip")

		return slip, fmt.Errorf("failed to insert slip: %w", err)
	}

	return slip, nil
}

func (s *serviceImpl) ApplyTx(ctx context.Context, tx *sqlx.Tx, tr reconciler.Transition) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplySlipTransition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.repo.UpdateTx(ctx, tx, tr.Updates, shared.FilterByID(tr.Slip.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("slip_id", tr.Slip.ID).Msg("failed to update slip")

		return fmt.Errorf("failed to update slip: %w", err)
	}

	return nil
}

// SetPrimaryTx clears the current primary before flagging the new one so the partial
// unique index on primary slips never sees two rows.
func (s *serviceImpl) SetPrimaryTx(ctx context.Context, tx *sqlx.Tx, tr reconciler.Transition) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPrimarySlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if tr.OldValue != constant.Empty {
		err = s.repo.UpdateTx(ctx, tx, map[string]any{model.FieldIsPrimary: false},
			shared.FilterByID(tr.OldValue, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("slip_id", tr.OldValue).Msg("failed to clear primary slip")

			return fmt.Errorf("failed to clear primary slip: %w", err)
		}
	}

	return s.ApplyTx(ctx, tx, tr)
}

func (s *serviceImpl) ToResponses(ctx context.Context, slips []model.Slip) []dto.SlipResponse {
	res := make([]dto.SlipResponse, len(slips))
	for i, slip := range slips {
		res[i].FromModel(slip, s.ViewURL(ctx, slip.ImageReference))
	}

	return res
}
