package room

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotel/{slug}/rooms", handler.GetRoomsByHotelSlug)
	router.Post("/room", handler.CreateRoom)
}

// GetRoomsByHotelSlug lists the rooms of a hotel.
// @Summary Get rooms of a hotel
// @Description Retrieve every room whose hotel_slug matches. An unknown slug yields an empty list.
// @Tags Room
// @Produce json
// @Param slug path string true "Hotel slug"
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} response.Error
// @Router /api/hotel/{slug}/rooms [get]
func (handler *Handler) GetRoomsByHotelSlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomsByHotelSlug")
	defer scope.End()

	slug := shared.PathParam(request, constant.RequestParamSlug)

	log.Info().Str("slug", slug).Msg("fetching rooms for hotel")

	rooms, err := handler.service.GetByHotelSlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// CreateRoom handles the creation of a new room.
// @Summary Create a room
// @Description Create a room. A file sent under "room_image" is stored and used as the room image.
// @Tags Room
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param hotel_slug formData string true "Hotel slug"
// @Param room_slug formData string true "Room slug"
// @Param room_title formData string false "Room title"
// @Param bedroom_count formData integer false "Bedroom count"
// @Param room_image formData file false "Room image"
// @Success 201 {object} dto.RoomResponse
// @Failure 500 {object} response.Error
// @Router /api/room [post]
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req, err := parseCreateRoomRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse room request")

		response.WithError(writer, err)

		return
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate room request")

		response.WithError(writer, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(writer, http.StatusCreated, room)
}

func parseCreateRoomRequest(request *http.Request) (req dto.CreateRoomRequest, err error) {
	if shared.IsJSONRequest(request) {
		if err = json.NewDecoder(request.Body).Decode(&req); err != nil {
			return req, fmt.Errorf("failed to decode request body: %w", err)
		}

		return req, nil
	}

	if err = request.ParseMultipartForm(constant.RequestMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return req, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	form := request.Form

	req.HotelSlug = form.Get("hotel_slug")
	req.RoomSlug = form.Get("room_slug")
	req.RoomTitle = form.Get("room_title")
	req.RoomImage = form.Get(constant.FormFieldRoomImage)

	if req.BedroomCount, err = shared.ParseInt("bedroom_count", form.Get("bedroom_count")); err != nil {
		return req, err
	}

	if request.MultipartForm != nil {
		if files := request.MultipartForm.File[constant.FormFieldRoomImage]; len(files) > 0 {
			if len(files) > 1 {
				return req, fmt.Errorf("expected at most one file under %s, got %d", constant.FormFieldRoomImage, len(files))
			}

			req.Image = files[0]
		}
	}

	return req, nil
}
