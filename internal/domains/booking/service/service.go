package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"stayadmin/config"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	auditModel "stayadmin/internal/domains/audit/model"
	auditDto "stayadmin/internal/domains/audit/model/dto"
	auditService "stayadmin/internal/domains/audit/service"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/internal/domains/booking/model/dto"
	"stayadmin/internal/domains/booking/repository"
	"stayadmin/internal/domains/payment"
	roomTypeService "stayadmin/internal/domains/roomtype/service"
	slipDto "stayadmin/internal/domains/slip/model/dto"
	"stayadmin/internal/domains/slip/reconciler"
	slipService "stayadmin/internal/domains/slip/service"
	"stayadmin/shared"
	"stayadmin/shared/cache"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/failure"
	gModel "stayadmin/shared/model"
	"stayadmin/shared/timezone"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheSearchBooking = "booking:search"
	cacheCountBooking  = "booking:count"

	searchArgReference = "search_reference"
	searchArgName      = "search_guest_name"
	searchArgEmail     = "search_guest_email"

	changeSeparator = "; "
)

// Booking is the admin façade. Every mutation runs in one transaction that locks the
// booking row, applies the change and appends exactly one audit entry.
type Booking interface {
	Search(ctx context.Context, params gDto.QueryParams) (dto.SearchResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Register(ctx context.Context, req dto.RegisterBookingRequest, actor gModel.Actor) (dto.BookingResponse, error)
	UpdateDetails(ctx context.Context, id string, req dto.UpdateDetailsRequest, actor gModel.Actor) (dto.BookingResponse, error)
	ApplyDiscount(ctx context.Context, id string, req dto.ApplyDiscountRequest, actor gModel.Actor) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelRequest, actor gModel.Actor) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string, actor gModel.Actor) (dto.BookingResponse, error)
	AttachSlip(ctx context.Context, id string, req slipDto.AttachSlipRequest, actor gModel.Actor) (dto.BookingResponse, error)
	MarkVerified(ctx context.Context, id, slipID string, actor gModel.Actor) (dto.BookingResponse, error)
	MarkNeedsAction(ctx context.Context, id, slipID string, req slipDto.NeedsActionRequest, actor gModel.Actor) (dto.BookingResponse, error)
	ReplaceSlip(ctx context.Context, id, slipID string, req slipDto.ReplaceSlipRequest, actor gModel.Actor) (dto.BookingResponse, error)
	SetPrimarySlip(ctx context.Context, id, slipID string, actor gModel.Actor) (dto.BookingResponse, error)
	RecordAutomatedResult(ctx context.Context, event slipDto.VerificationResultEvent) error
	ListAudit(ctx context.Context, id string) ([]auditDto.EntryResponse, error)
	VerifyAudit(ctx context.Context, id string) (auditDto.ChainReportResponse, error)
	ExportAudit(ctx context.Context, id string) (auditDto.Export, error)
}

type serviceImpl struct {
	repo       repository.Booking
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	tx         postgres.Transactor
	slips      slipService.Slip
	audit      auditService.Audit
	roomTypes  roomTypeService.RoomType
	reconciler *reconciler.Reconciler
}

func New(
	repo repository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	tx postgres.Transactor,
	slips slipService.Slip,
	audit auditService.Audit,
	roomTypes roomTypeService.RoomType,
	reconciler *reconciler.Reconciler,
) Booking {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		tx:         tx,
		slips:      slips,
		audit:      audit,
		roomTypes:  roomTypes,
		reconciler: reconciler,
	}
}

// mutation changes a locked booking and returns the audit record describing the change.
type mutation func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error)

func filterByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) lockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, found, err := s.repo.GetTx(ctx, tx, true, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if !found {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// commit runs fn and the audit append in one transaction. Anything that is not already
// a failure surfaces as StorageError.
func (s *serviceImpl) commit(ctx context.Context, actor gModel.Actor, fn func(ctx context.Context, tx *sqlx.Tx) (auditModel.Record, error)) (auditModel.Entry, error) {
	var entry auditModel.Entry

	err := s.tx.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		rec, err := fn(ctx, tx)
		if err != nil {
			return err
		}

		rec.Actor = actor

		entry, err = s.audit.AppendTx(ctx, tx, rec)

		return err
	})
	if err != nil {
		return entry, failure.StorageError(err) // nolint:wrapcheck
	}

	s.afterCommit(ctx, entry)

	return entry, nil
}

func (s *serviceImpl) mutate(ctx context.Context, id string, actor gModel.Actor, fn mutation) (res dto.BookingResponse, err error) {
	if err = actor.Validate(); err != nil {
		return res, err
	}

	var committed model.Booking

	_, err = s.commit(ctx, actor, func(ctx context.Context, tx *sqlx.Tx) (auditModel.Record, error) {
		booking, err := s.lockTx(ctx, tx, id)
		if err != nil {
			return auditModel.Record{}, err
		}

		rec, err := fn(ctx, tx, booking)
		if err != nil {
			return rec, err
		}

		rec.BookingID = booking.ID

		committed, err = s.readTx(ctx, tx, booking.ID)

		return rec, err
	})
	if err != nil {
		return res, err
	}

	return s.project(ctx, committed), nil
}

func (s *serviceImpl) readTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, _, err := s.repo.GetTx(ctx, tx, false, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to read updated booking")

		return booking, fmt.Errorf("failed to read updated booking: %w", err)
	}

	return booking, nil
}

// project reads the projection of a committed change. The change is durable at this
// point, so a failed read falls back to the committed row without slips or history.
func (s *serviceImpl) project(ctx context.Context, committed model.Booking) dto.BookingResponse {
	res, err := s.Get(ctx, committed.ID)
	if err == nil {
		return res
	}

	log.Error().Err(err).Str("booking_id", committed.ID).Msg("failed to read booking after commit")

	res = dto.BookingResponse{}
	res.FromModel(committed, nil, nil)

	return res
}

func (s *serviceImpl) afterCommit(ctx context.Context, entry auditModel.Entry) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.audit.Publish(c, entry)
	}()
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.SortBy == constant.Empty {
		params.SortBy = constant.DefaultValueSortBy
	}

	if err = params.ValidateSort(slices.Sorted(maps.Keys(dto.SortFields))...); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if params.Status != constant.Empty {
		if err = model.Status(params.Status).Validate(); err != nil {
			return res, err
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    params.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if params.Search != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: searchArgReference, Field: model.FieldReference, Value: params.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: searchArgName, Field: model.FieldGuestName, Value: params.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: searchArgEmail, Field: model.FieldGuestEmail, Value: params.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheSearchBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	query := params
	query.SortBy = dto.SortFields[params.SortBy]

	models, err := s.repo.GetAll(ctx, query, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search bookings")

		return res, failure.StorageError(fmt.Errorf("failed to search bookings: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models, total, params)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, failure.StorageError(fmt.Errorf("failed to count bookings: %w", err)) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// Get builds the projection from storage every time; it carries presigned URLs that
// must not outlive a cache entry.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, found, err := s.repo.Get(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

		return res, failure.StorageError(fmt.Errorf("failed to get booking: %w", err)) // nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	slips, err := s.slips.ListForBooking(ctx, booking.ID)
	if err != nil {
		return res, failure.StorageError(err) // nolint:wrapcheck
	}

	recent, err := s.audit.Recent(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, s.slips.ToResponses(ctx, slips), recent)

	return res, nil
}

func parseStay(checkIn, checkOut string) (in, out time.Time, err error) {
	in, err = timezone.ParseDate(checkIn)
	if err != nil {
		return in, out, failure.BadRequestFromString("check-in must be a YYYY-MM-DD date") // nolint:wrapcheck
	}

	out, err = timezone.ParseDate(checkOut)
	if err != nil {
		return in, out, failure.BadRequestFromString("check-out must be a YYYY-MM-DD date") // nolint:wrapcheck
	}

	if !out.After(in) {
		return in, out, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	return in, out, nil
}

func checkCapacity(capacity, guests int) error {
	if guests < 1 {
		return failure.BadRequestFromString("guest count must be at least 1") // nolint:wrapcheck
	}

	if capacity > 0 && guests > capacity {
		// nolint:wrapcheck
		return failure.BadRequestFromString(fmt.Sprintf("room type holds at most %d guests", capacity))
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// Register stores a booking handed over by the reservation flow.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterBookingRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = actor.Validate(); err != nil {
		return res, err
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	amount, err := payment.Compute(req.TotalPrice, req.PaymentType, 0)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(checkIn, checkOut, amount, actor.ID, timezone.Now())

	_, err = s.commit(ctx, actor, func(ctx context.Context, tx *sqlx.Tx) (auditModel.Record, error) {
		roomType, err := s.roomTypes.GetBookableTx(ctx, tx, booking.RoomTypeID)
		if err != nil {
			return auditModel.Record{}, err
		}

		if err = checkCapacity(roomType.Capacity, booking.GuestCount); err != nil {
			return auditModel.Record{}, err
		}

		booking.RoomTypeName = roomType.Name

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			if isUniqueViolation(err) {
				return auditModel.Record{}, failure.BadRequestFromString("booking reference already exists")
			}

			log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to insert booking")

			return auditModel.Record{}, fmt.Errorf("failed to insert booking: %w", err)
		}

		return auditModel.Record{
			BookingID: booking.ID,
			Action:    auditModel.ActionBookingCreated,
			NewValue:  auditModel.Text(booking.Reference),
		}, nil
	})
	if err != nil {
		return res, err
	}

	return s.project(ctx, booking), nil
}

type changeSet struct {
	fields []string
	old    []string
	new    []string
}

func (c *changeSet) add(field, oldValue, newValue string) {
	if oldValue == newValue {
		return
	}

	c.fields = append(c.fields, field)
	c.old = append(c.old, field+"="+oldValue)
	c.new = append(c.new, field+"="+newValue)
}

func (c *changeSet) empty() bool {
	return len(c.fields) == 0
}

func text(s *string) string {
	if s == nil {
		return constant.Empty
	}

	return *s
}

func (s *serviceImpl) UpdateDetails(ctx context.Context, id string, req dto.UpdateDetailsRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingDetails")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	if req.GuestCount < 1 {
		return res, failure.BadRequestFromString("guest count must be at least 1") // nolint:wrapcheck
	}

	if req.TotalPrice < 0 {
		return res, failure.BadRequestFromString("total price must not be negative") // nolint:wrapcheck
	}

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		if !booking.Editable() {
			return auditModel.Record{}, failure.InvalidState(fmt.Sprintf("cannot edit a %s booking", booking.Status))
		}

		if req.RoomTypeID != booking.RoomTypeID || req.GuestCount != booking.GuestCount {
			roomType, err := s.roomTypes.GetBookableTx(ctx, tx, req.RoomTypeID)
			if err != nil {
				return auditModel.Record{}, err
			}

			if err = checkCapacity(roomType.Capacity, req.GuestCount); err != nil {
				return auditModel.Record{}, err
			}
		}

		paymentType := booking.PaymentType
		if req.PaymentType != nil {
			paymentType = *req.PaymentType
		}

		if err := payment.ValidateDiscount(req.TotalPrice, booking.Discount()); err != nil {
			return auditModel.Record{}, failure.BadRequestFromString(
				fmt.Sprintf("total price %d is below the applied discount %d", req.TotalPrice, booking.Discount()))
		}

		amount, err := payment.Compute(req.TotalPrice, paymentType, booking.Discount())
		if err != nil {
			return auditModel.Record{}, err
		}

		adminNotes := dto.OptionalText(req.AdminNotes)

		changes := changeSet{}
		changes.add(model.FieldCheckIn, timezone.FormatDate(booking.CheckIn), timezone.FormatDate(checkIn))
		changes.add(model.FieldCheckOut, timezone.FormatDate(booking.CheckOut), timezone.FormatDate(checkOut))
		changes.add(model.FieldGuestCount, strconv.Itoa(booking.GuestCount), strconv.Itoa(req.GuestCount))
		changes.add(model.FieldRoomTypeID, booking.RoomTypeID, req.RoomTypeID)
		changes.add(model.FieldAdminNotes, text(booking.AdminNotes), text(adminNotes))
		changes.add(model.FieldTotalPrice, strconv.FormatInt(booking.TotalPrice, 10), strconv.FormatInt(req.TotalPrice, 10))
		changes.add(model.FieldPaymentType, string(booking.PaymentType), string(paymentType))
		changes.add(model.FieldPaymentAmount, strconv.FormatInt(booking.PaymentAmount, 10), strconv.FormatInt(amount, 10))

		if changes.empty() {
			return auditModel.Record{}, failure.BadRequestFromString("nothing to update")
		}

		updates := map[string]any{
			model.FieldCheckIn:       checkIn,
			model.FieldCheckOut:      checkOut,
			model.FieldGuestCount:    req.GuestCount,
			model.FieldRoomTypeID:    req.RoomTypeID,
			model.FieldAdminNotes:    adminNotes,
			model.FieldTotalPrice:    req.TotalPrice,
			model.FieldPaymentType:   paymentType,
			model.FieldPaymentAmount: amount,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor.ID,
		}

		if err = s.repo.UpdateTx(ctx, tx, updates, filterByID(booking.ID)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking")

			return auditModel.Record{}, fmt.Errorf("failed to update booking: %w", err)
		}

		return auditModel.Record{
			Action:   auditModel.ActionBookingUpdated,
			OldValue: auditModel.Text(strings.Join(changes.old, changeSeparator)),
			NewValue: auditModel.Text(strings.Join(changes.new, changeSeparator)),
		}, nil
	})
}

func (s *serviceImpl) ApplyDiscount(ctx context.Context, id string, req dto.ApplyDiscountRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyDiscount")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reason := strings.TrimSpace(req.Reason)
	if reason == constant.Empty {
		return res, failure.BadRequestFromString("discount reason is required") // nolint:wrapcheck
	}

	if req.Amount == nil {
		return res, failure.BadRequestFromString("discount amount is required") // nolint:wrapcheck
	}

	discount := *req.Amount

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		if !booking.Editable() {
			return auditModel.Record{}, failure.InvalidState(fmt.Sprintf("cannot discount a %s booking", booking.Status))
		}

		amount, err := payment.Compute(booking.TotalPrice, booking.PaymentType, discount)
		if err != nil {
			return auditModel.Record{}, err
		}

		updates := map[string]any{
			model.FieldDiscountAmount: discount,
			model.FieldDiscountReason: reason,
			model.FieldPaymentAmount:  amount,
			constant.FieldModifiedAt:  timezone.Now(),
			constant.FieldModifiedBy:  actor.ID,
		}

		if err = s.repo.UpdateTx(ctx, tx, updates, filterByID(booking.ID)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to apply discount")

			return auditModel.Record{}, fmt.Errorf("failed to apply discount: %w", err)
		}

		return auditModel.Record{
			Action:   auditModel.ActionDiscountApplied,
			OldValue: auditModel.Text(strconv.FormatInt(booking.Discount(), 10)),
			NewValue: auditModel.Text(strconv.FormatInt(discount, 10)),
			Note:     auditModel.Text(reason),
		}, nil
	})
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reason := strings.TrimSpace(req.Reason)
	if reason == constant.Empty {
		return res, failure.BadRequestFromString("cancellation reason is required") // nolint:wrapcheck
	}

	if !req.Confirm {
		return res, failure.BadRequestFromString("cancellation must be confirmed") // nolint:wrapcheck
	}

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		switch booking.Status {
		case model.StatusCancelled:
			return auditModel.Record{}, failure.AlreadyCancelled
		case model.StatusCompleted:
			return auditModel.Record{}, failure.InvalidState("a completed booking cannot be cancelled")
		case model.StatusConfirmed:
		}

		now := timezone.Now()

		updates := map[string]any{
			model.FieldStatus:             model.StatusCancelled,
			model.FieldCancelledAt:        now,
			model.FieldCancelledBy:        actor.ID,
			model.FieldCancellationReason: reason,
			constant.FieldModifiedAt:      now,
			constant.FieldModifiedBy:      actor.ID,
		}

		if err := s.repo.UpdateTx(ctx, tx, updates, filterByID(booking.ID)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to cancel booking")

			return auditModel.Record{}, fmt.Errorf("failed to cancel booking: %w", err)
		}

		return auditModel.Record{
			Action:   auditModel.ActionBookingCancelled,
			OldValue: auditModel.Text(string(booking.Status)),
			NewValue: auditModel.Text(string(model.StatusCancelled)),
			Note:     auditModel.Text(reason),
		}, nil
	})
}

// Complete closes the stay of a confirmed booking. Slip decisions stay open afterwards.
func (s *serviceImpl) Complete(ctx context.Context, id string, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		if booking.Status != model.StatusConfirmed {
			return auditModel.Record{}, failure.InvalidState(fmt.Sprintf("cannot complete a %s booking", booking.Status))
		}

		updates := map[string]any{
			model.FieldStatus:        model.StatusCompleted,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actor.ID,
		}

		if err := s.repo.UpdateTx(ctx, tx, updates, filterByID(booking.ID)); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to complete booking")

			return auditModel.Record{}, fmt.Errorf("failed to complete booking: %w", err)
		}

		return auditModel.Record{
			Action:   auditModel.ActionBookingCompleted,
			OldValue: auditModel.Text(string(booking.Status)),
			NewValue: auditModel.Text(string(model.StatusCompleted)),
		}, nil
	})
}

// AttachSlip records evidence uploaded by the guest flow.
func (s *serviceImpl) AttachSlip(ctx context.Context, id string, req slipDto.AttachSlipRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachSlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.ImageReference = strings.TrimSpace(req.ImageReference)
	if req.ImageReference == constant.Empty {
		return res, failure.BadRequestFromString("image reference is required") // nolint:wrapcheck
	}

	if req.UploadedBy == constant.Empty {
		req.UploadedBy = actor.ID
	}

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		if !booking.Active() {
			return auditModel.Record{}, failure.InvalidState("cannot attach a slip to a cancelled booking")
		}

		slip, err := s.slips.AttachTx(ctx, tx, booking.ID, req)
		if err != nil {
			return auditModel.Record{}, err
		}

		return auditModel.Record{
			Action:   auditModel.ActionSlipUploaded,
			NewValue: auditModel.Text(slip.ImageReference),
		}, nil
	})
}

func (s *serviceImpl) MarkVerified(ctx context.Context, id, slipID string, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkSlipVerified")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		slip, err := s.slips.ResolveTx(ctx, tx, booking.ID, slipID)
		if err != nil {
			return auditModel.Record{}, err
		}

		tr, err := s.reconciler.MarkVerified(slip, booking.Active(), actor)
		if err != nil {
			return auditModel.Record{}, err
		}

		if err = s.slips.ApplyTx(ctx, tx, tr); err != nil {
			return auditModel.Record{}, err
		}

		return transitionRecord(auditModel.ActionSlipVerified, tr), nil
	})
}

func (s *serviceImpl) MarkNeedsAction(ctx context.Context, id, slipID string, req slipDto.NeedsActionRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkSlipNeedsAction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.Note) == constant.Empty {
		return res, failure.BadRequestFromString("a note is required when a slip needs action") // nolint:wrapcheck
	}

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		slip, err := s.slips.ResolveTx(ctx, tx, booking.ID, slipID)
		if err != nil {
			return auditModel.Record{}, err
		}

		tr, err := s.reconciler.MarkNeedsAction(slip, booking.Active(), actor, req.Note)
		if err != nil {
			return auditModel.Record{}, err
		}

		if err = s.slips.ApplyTx(ctx, tx, tr); err != nil {
			return auditModel.Record{}, err
		}

		return transitionRecord(auditModel.ActionSlipNeedsAction, tr), nil
	})
}

func (s *serviceImpl) ReplaceSlip(ctx context.Context, id, slipID string, req slipDto.ReplaceSlipRequest, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReplaceSlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.ImageReference) == constant.Empty {
		return res, failure.BadRequestFromString("image reference is required") // nolint:wrapcheck
	}

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		slip, err := s.slips.ResolveTx(ctx, tx, booking.ID, slipID)
		if err != nil {
			return auditModel.Record{}, err
		}

		tr, err := s.reconciler.ReplaceSlip(slip, booking.Active(), actor, req.ImageReference)
		if err != nil {
			return auditModel.Record{}, err
		}

		if err = s.slips.ApplyTx(ctx, tx, tr); err != nil {
			return auditModel.Record{}, err
		}

		return transitionRecord(auditModel.ActionSlipReplaced, tr), nil
	})
}

func (s *serviceImpl) SetPrimarySlip(ctx context.Context, id, slipID string, actor gModel.Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetPrimarySlip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(slipID) == constant.Empty {
		return res, failure.BadRequestFromString("slip id is required") // nolint:wrapcheck
	}

	return s.mutate(ctx, id, actor, func(ctx context.Context, tx *sqlx.Tx, booking model.Booking) (auditModel.Record, error) {
		current, err := s.slips.ResolveTx(ctx, tx, booking.ID, constant.Empty)
		if err != nil && !failure.IsKind(err, failure.KindNotFound) {
			return auditModel.Record{}, err
		}

		slip, err := s.slips.ResolveTx(ctx, tx, booking.ID, slipID)
		if err != nil {
			return auditModel.Record{}, err
		}

		tr, err := s.reconciler.SetPrimary(slip, current, booking.Active())
		if err != nil {
			return auditModel.Record{}, err
		}

		if err = s.slips.SetPrimaryTx(ctx, tx, tr); err != nil {
			return auditModel.Record{}, err
		}

		return transitionRecord(auditModel.ActionSlipPrimaryChanged, tr), nil
	})
}

// RecordAutomatedResult ingests one result of the automated checker. Stale results and
// results for unknown slips are dropped without error so the consumer can move on.
func (s *serviceImpl) RecordAutomatedResult(ctx context.Context, event slipDto.VerificationResultEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordAutomatedResult")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if event.SlipID == constant.Empty {
		return failure.BadRequestFromString("slip id is required") // nolint:wrapcheck
	}

	actor := gModel.SystemActor(s.cfg.Audit.SystemActor)

	_, err = s.commit(ctx, actor, func(ctx context.Context, tx *sqlx.Tx) (auditModel.Record, error) {
		owner, err := s.slips.GetTx(ctx, tx, event.SlipID)
		if err != nil {
			return auditModel.Record{}, err
		}

		booking, err := s.lockTx(ctx, tx, owner.BookingID)
		if err != nil {
			return auditModel.Record{}, err
		}

		slip, err := s.slips.ResolveTx(ctx, tx, booking.ID, owner.ID)
		if err != nil {
			return auditModel.Record{}, err
		}

		if event.ImageReference != constant.Empty && event.ImageReference != slip.ImageReference {
			return auditModel.Record{}, failure.InvalidState("result is for a superseded image")
		}

		tr, err := s.reconciler.RecordAutomatedResult(slip, event.AutomatedStatus(), event.CheckedAt)
		if err != nil {
			return auditModel.Record{}, err
		}

		if err = s.slips.ApplyTx(ctx, tx, tr); err != nil {
			return auditModel.Record{}, err
		}

		rec := transitionRecord(auditModel.ActionSlipAutoChecked, tr)
		rec.BookingID = booking.ID

		return rec, nil
	})

	switch {
	case err == nil:
		return nil
	case failure.IsKind(err, failure.KindInvalidState), failure.IsKind(err, failure.KindNotFound),
		failure.IsKind(err, failure.KindValidation):
		log.Warn().Err(err).Str("slip_id", event.SlipID).Msg("dropping automated verification result")

		return nil
	default:
		return err
	}
}

func transitionRecord(action auditModel.Action, tr reconciler.Transition) auditModel.Record {
	return auditModel.Record{
		Action:   action,
		OldValue: auditModel.Text(tr.OldValue),
		NewValue: auditModel.Text(tr.NewValue),
		Note:     tr.Note,
	}
}

func (s *serviceImpl) requireBooking(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, filterByID(id))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to check if booking exists")

		return failure.StorageError(fmt.Errorf("failed to check if booking exists: %w", err)) // nolint:wrapcheck
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ListAudit(ctx context.Context, id string) (res []auditDto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookingAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireBooking(ctx, id); err != nil {
		return nil, err
	}

	return s.audit.ListForBooking(ctx, id)
}

func (s *serviceImpl) VerifyAudit(ctx context.Context, id string) (res auditDto.ChainReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyBookingAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireBooking(ctx, id); err != nil {
		return res, err
	}

	return s.audit.VerifyChain(ctx, id)
}

func (s *serviceImpl) ExportAudit(ctx context.Context, id string) (res auditDto.Export, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportBookingAudit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireBooking(ctx, id); err != nil {
		return res, err
	}

	return s.audit.Export(ctx, id)
}
