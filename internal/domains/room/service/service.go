package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"hotelier/infras/objectstore"
	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared/constant"

	"github.com/rs/zerolog/log"
)

type Room interface {
	GetByHotelSlug(ctx context.Context, hotelSlug string) ([]dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	store objectstore.ObjectStore
	otel  otel.Otel
}

func New(repo repository.Room, store objectstore.ObjectStore, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) GetByHotelSlug(ctx context.Context, hotelSlug string) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByHotelSlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.GetByHotelSlug(ctx, hotelSlug)
	if err != nil {
		log.Error().Err(err).Str("hotelSlug", hotelSlug).Msg("failed to get rooms")

		return []dto.RoomResponse{}, err
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var imageURL string

	if req.Image != nil {
		imageURL, err = s.store.Save(ctx, constant.FormFieldRoomImage, req.Image)
		if err != nil {
			log.Error().Err(err).Str("file", req.Image.Filename).Msg("failed to store room image")

			return res, fmt.Errorf("failed to store image %q: %w", req.Image.Filename, err)
		}
	}

	room, err := s.repo.Create(ctx, req.ToModel(imageURL))
	if err != nil {
		log.Error().Err(err).Str("roomSlug", req.RoomSlug).Msg("failed to create room")

		if imageURL != constant.Empty {
			if err := s.store.Delete(context.WithoutCancel(ctx), imageURL); err != nil {
				log.Error().Err(err).Str("ref", imageURL).Msg("failed to delete orphaned room image")
			}
		}

		return res, err
	}

	res.FromModel(room)

	return res, nil
}
