package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/hotel/model"
	"hotelier/shared/constant"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Hotel interface {
	// Create inserts the hotel and one hotel_images row per image reference
	// in a single transaction. Either everything is stored or nothing is.
	Create(ctx context.Context, hotel model.Hotel, images []string) (model.Hotel, error)
	// GetBySlug returns the hotel with its aggregated image URLs. A slug
	// without a match yields a zero Hotel and a nil error.
	GetBySlug(ctx context.Context, slug string) (model.Hotel, error)
}

type repositoryImpl struct {
	hotels gRepo.Repository[model.Hotel]
	images gRepo.Repository[model.HotelImage]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		hotels: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, db, otel),
		images: gRepo.NewRepository[model.HotelImage](model.ImageEntityName, model.ImageTableName, db, otel),
		db:     db,
		otel:   otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, hotel model.Hotel, images []string) (created model.Hotel, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("images", len(images))

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		inserted, err := r.hotels.InsertTx(ctx, tx, hotel)
		if err != nil {
			return err
		}

		inserted.Images = pq.StringArray{}

		for _, imageURL := range images {
			image := model.HotelImage{
				HotelID:  inserted.ID,
				ImageURL: imageURL,
			}

			if _, err := r.images.InsertTx(ctx, tx, image); err != nil {
				return err
			}

			inserted.Images = append(inserted.Images, imageURL)
		}

		created = inserted

		return nil
	})
	if err != nil {
		return model.Hotel{}, fmt.Errorf("failed to create hotel: %w", err)
	}

	return created, nil
}

func (r *repositoryImpl) GetBySlug(ctx context.Context, slug string) (hotel model.Hotel, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, getHotelBySlugSQL)

	err = r.db.DB.GetContext(ctx, &hotel, getHotelBySlugSQL, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Hotel{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Hotel{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return hotel, nil
}
