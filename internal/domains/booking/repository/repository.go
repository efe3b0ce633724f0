package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/internal/domains/booking/model"
	roomModel "staysync/internal/domains/room/model"
	"staysync/shared"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	gRepo "staysync/shared/repository"

	"github.com/jmoiron/sqlx"
)

var countActiveOnDateQuery = fmt.Sprintf(`SELECT COUNT(b.%[1]s) FROM %[2]s b
JOIN %[3]s r ON r.%[4]s = b.%[5]s
WHERE r.%[6]s = :category AND b.%[7]s <= :day AND b.%[8]s > :day AND b.%[9]s NOT IN (:cancelled, :checked_out)`,
	model.FieldID, model.TableName, roomModel.TableName, roomModel.FieldID, model.FieldRoomID,
	roomModel.FieldCategory, model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus,
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	// UpsertByExternalID writes an external-origin booking keyed by its external id. The returned
	// id is the canonical booking that now holds the external id.
	UpsertByExternalID(ctx context.Context, booking model.Booking) (id string, inserted bool, err error)
	ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]bool, error)
	CountActiveOnDate(ctx context.Context, category string, day time.Time) (int, error)
	// RecordFailure appends a sync error and, when it belongs to a booking, flags that booking.
	RecordFailure(ctx context.Context, syncErr model.SyncError) error
	SyncErrors(ctx context.Context, params gDto.QueryParams, bookingID string) ([]model.SyncError, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	errors gRepo.Repository[model.SyncError]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		errors:     gRepo.NewRepository[model.SyncError](model.ErrorEntity, model.ErrorTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) UpsertByExternalID(ctx context.Context, booking model.Booking) (string, bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpsertByExternalID")
	defer scope.End()

	return r.Upsert(ctx, booking, model.FieldExternalID, model.UpsertColumns()...) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ExistingExternalIDs")
	defer scope.End()

	existing := make(map[string]bool, len(externalIDs))
	if len(externalIDs) == 0 {
		return existing, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldExternalID, Value: externalIDs, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	bookings, err := r.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldExternalID)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to look up external ids: %w", err)
	}

	for _, booking := range bookings {
		existing[booking.ExternalID.String] = true
	}

	return existing, nil
}

func (r *repositoryImpl) CountActiveOnDate(ctx context.Context, category string, day time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountActiveOnDate")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countActiveOnDateQuery)

	counts := []int{}
	args := map[string]any{
		"category":    category,
		"day":         day,
		"cancelled":   model.StatusCancelled,
		"checked_out": model.StatusCheckedOut,
	}

	if err := r.Select(ctx, &counts, countActiveOnDateQuery, args); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}

	if len(counts) == 0 {
		return 0, nil
	}

	return counts[0], nil
}

func (r *repositoryImpl) RecordFailure(ctx context.Context, syncErr model.SyncError) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.RecordFailure")
	defer scope.End()

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.errors.InsertTx(ctx, tx, syncErr); err != nil {
			return err //nolint:wrapcheck
		}

		if !syncErr.BookingID.Valid {
			return nil
		}

		flag := map[string]any{
			model.FieldSyncStatus: model.SyncStatusError,
			model.FieldModifiedAt: syncErr.CreatedAt,
			model.FieldModifiedBy: constant.SystemUser,
		}

		return r.UpdateTx(ctx, tx, flag, shared.FilterByID(syncErr.BookingID.String, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to record sync failure: %w", err)
	}

	return nil
}

func (r *repositoryImpl) SyncErrors(ctx context.Context, params gDto.QueryParams, bookingID string) ([]model.SyncError, error) {
	return r.errors.GetAll(ctx, params, shared.FilterByField(model.FieldBookingID, bookingID, model.ErrorTableName)) //nolint:wrapcheck
}
