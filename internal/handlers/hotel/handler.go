package hotel

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/service"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/hotel", handler.CreateHotel)
	router.Get("/hotel/{slug}", handler.GetHotelBySlug)
}

// GetHotelBySlug retrieves a hotel and its image URLs.
// @Summary Get a hotel by slug
// @Description Retrieve a hotel with every image URL attached to it.
// @Tags Hotel
// @Produce json
// @Param slug path string true "Hotel slug"
// @Success 200 {object} dto.HotelResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotel/{slug} [get]
func (handler *Handler) GetHotelBySlug(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelBySlug")
	defer scope.End()

	slug := shared.PathParam(request, constant.RequestParamSlug)

	hotel, err := handler.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, hotel)
}

// CreateHotel creates a hotel together with up to five images.
// @Summary Create a hotel
// @Description Create a hotel from form fields. Files sent under "images" are stored and linked to the hotel.
// @Tags Hotel
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param slug formData string true "Hotel slug"
// @Param title formData string true "Hotel title"
// @Param description formData string false "Description"
// @Param guest_count formData integer false "Guest count"
// @Param bedroom_count formData integer false "Bedroom count"
// @Param bathroom_count formData integer false "Bathroom count"
// @Param amenities formData []string false "Amenities" collectionFormat(multi)
// @Param host_name formData string false "Host name"
// @Param host_image formData string false "Host image URL"
// @Param address formData string false "Address"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param images formData file false "Hotel images (up to 5)"
// @Success 201 {object} dto.HotelResponse
// @Failure 500 {object} response.Error
// @Router /api/hotel [post]
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req, err := parseCreateHotelRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse hotel request")

		response.WithError(writer, err)

		return
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate hotel request")

		response.WithError(writer, err)

		return
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotel created successfully")

	response.WithJSON(writer, http.StatusCreated, hotel)
}

func parseCreateHotelRequest(request *http.Request) (req dto.CreateHotelRequest, err error) {
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

	req.Slug = form.Get("slug")
	req.Title = form.Get("title")
	req.Description = form.Get("description")
	req.HostName = form.Get("host_name")
	req.HostImage = form.Get("host_image")
	req.Address = form.Get("address")
	req.Amenities = slices.Concat(shared.ParseStringList(form["amenities"]), shared.CompactStrings(form["amenities[]"]))

	if req.GuestCount, err = shared.ParseInt("guest_count", form.Get("guest_count")); err != nil {
		return req, err
	}

	if req.BedroomCount, err = shared.ParseInt("bedroom_count", form.Get("bedroom_count")); err != nil {
		return req, err
	}

	if req.BathroomCount, err = shared.ParseInt("bathroom_count", form.Get("bathroom_count")); err != nil {
		return req, err
	}

	if req.Latitude, err = shared.ParseFloat("latitude", form.Get("latitude")); err != nil {
		return req, err
	}

	if req.Longitude, err = shared.ParseFloat("longitude", form.Get("longitude")); err != nil {
		return req, err
	}

	if request.MultipartForm != nil {
		req.Images = request.MultipartForm.File[constant.FormFieldHotelImages]
	}

	return req, nil
}
