package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"glade/infras/otel"
	"glade/infras/postgres"
	amenityModel "glade/internal/domains/amenity/model"
	"glade/internal/domains/cottage/model"
	"glade/shared/constant"
	gDto "glade/shared/dto"
	"glade/shared/logger"
	gRepo "glade/shared/repository"
)

type Cottage interface {
	Insert(ctx context.Context, model model.Cottage) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Cottage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Cottage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Cottage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	ListAmenities(ctx context.Context, cottageID string) ([]amenityModel.Amenity, error)
	ReplaceAmenityLinksTx(ctx context.Context, sqltx *sqlx.Tx, cottageID string, amenityIDs []string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Cottage]
	links gRepo.Repository[model.CottageAmenity]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cottage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Cottage](model.EntityName, model.TableName, model.FieldID, db, otel),
		links:      gRepo.NewRepository[model.CottageAmenity](model.LinkEntityName, model.LinkTableName, model.FieldCottageID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return sqltx, nil
}

// ListAmenities returns the amenities currently linked to the cottage.
func (repo *repositoryImpl) ListAmenities(ctx context.Context, cottageID string) (amenities []amenityModel.Amenity, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cottage.ListAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT a.* FROM %s a JOIN %s ca ON ca.%s = a.%s WHERE ca.%s = $1",
		amenityModel.TableName,
		model.LinkTableName,
		model.FieldAmenityID,
		amenityModel.FieldID,
		model.FieldCottageID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &amenities, query, cottageID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list cottage amenities: %w", err)
	}

	return amenities, nil
}

// ReplaceAmenityLinksTx swaps the cottage's amenity link set inside the given transaction.
func (repo *repositoryImpl) ReplaceAmenityLinksTx(ctx context.Context, sqltx *sqlx.Tx, cottageID string, amenityIDs []string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cottage.ReplaceAmenityLinksTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.LinkTableName, model.FieldCottageID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, deleteQuery)

	_, err = sqltx.ExecContext(ctx, deleteQuery, cottageID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to clear cottage amenity links: %w", err)
	}

	if len(amenityIDs) == 0 {
		return nil
	}

	links := make([]model.CottageAmenity, len(amenityIDs))
	for i, amenityID := range amenityIDs {
		links[i] = model.CottageAmenity{
			CottageID: cottageID,
			AmenityID: amenityID,
		}
	}

	if err = repo.links.InsertBulkTx(ctx, sqltx, links); err != nil {
		return fmt.Errorf("failed to insert cottage amenity links: %w", err)
	}

	return nil
}
