package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"

	"hotelier/infras/objectstore"
	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/repository"
	"hotelier/shared/constant"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	MessageHotelNotFound = "Hotel not found"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	store objectstore.ObjectStore
	otel  otel.Otel
}

func New(repo repository.Hotel, store objectstore.ObjectStore, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		store: store,
		otel:  otel,
	}
}

// Create stores the uploaded images, then inserts the hotel with their
// references. Files already stored are removed again when any later step
// fails.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(req.Images) > constant.MaxHotelImages {
		return res, fmt.Errorf("too many images: %d (max %d)", len(req.Images), constant.MaxHotelImages)
	}

	refs := make([]string, 0, len(req.Images))

	for _, header := range req.Images {
		ref, err := s.store.Save(ctx, constant.FormFieldHotelImages, header)
		if err != nil {
			log.Error().Err(err).Str("file", header.Filename).Msg("failed to store hotel image")
			s.discard(ctx, refs)

			return res, fmt.Errorf("failed to store image %q: %w", header.Filename, err)
		}

		refs = append(refs, ref)
	}

	hotel, err := s.repo.Create(ctx, req.ToModel(), refs)
	if err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("failed to create hotel")
		s.discard(ctx, refs)

		return res, err
	}

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to get hotel")

		return res, err
	}

	if !hotel.Exists() {
		return res, failure.NotFound(MessageHotelNotFound)
	}

	res.FromModel(hotel)

	return res, nil
}

// discard removes stored files whose hotel was never committed. It outlives
// a cancelled request.
func (s *serviceImpl) discard(ctx context.Context, refs []string) {
	c := context.WithoutCancel(ctx)

	for _, ref := range refs {
		if err := s.store.Delete(c, ref); err != nil {
			log.Error().Err(err).Str("ref", ref).Msg("failed to delete orphaned hotel image")
		}
	}
}
