package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Room interface {
	// GetByHotelSlug returns every room whose hotel_slug equals hotelSlug,
	// or an empty slice when there is none.
	GetByHotelSlug(ctx context.Context, hotelSlug string) ([]model.Room, error)
	// Create inserts one room and returns the stored row.
	Create(ctx context.Context, room model.Room) (model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByHotelSlug(ctx context.Context, hotelSlug string) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetByHotelSlug")
	defer scope.End()

	return r.GetAll(ctx, FilterByHotelSlug(hotelSlug))
}

func (r *repositoryImpl) Create(ctx context.Context, room model.Room) (model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Create")
	defer scope.End()

	return r.Insert(ctx, room)
}

// FilterByHotelSlug selects the rooms whose hotel_slug equals slug.
func FilterByHotelSlug(slug string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelSlug,
				Value:    slug,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
