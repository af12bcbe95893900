package room_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotelier/infras/otel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model/dto"
	roomHandler "hotelier/internal/handlers/room"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *roomMocks.MockRoomService) chi.Router {
	handler := roomHandler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func roomForm(t *testing.T, fields map[string]string, files ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	for _, name := range files {
		part, err := writer.CreateFormFile("room_image", name)
		require.NoError(t, err)

		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestHandler_GetRoomsByHotelSlug(t *testing.T) {
	image := "/uploads/room_image-1-1.png"

	tests := []struct {
		name      string
		setupMock func(svc *roomMocks.MockRoomService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "rooms found",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().GetByHotelSlug(gomock.Any(), "seaside-inn").Return([]dto.RoomResponse{
					{HotelSlug: "seaside-inn", RoomSlug: "deluxe", RoomImage: &image, RoomTitle: "Deluxe", BedroomCount: 2},
					{HotelSlug: "seaside-inn", RoomSlug: "standard", RoomTitle: "Standard", BedroomCount: 1},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[{"hotel_slug":"seaside-inn","room_slug":"deluxe","room_image":"/uploads/room_image-1-1.png","room_title":"Deluxe","bedroom_count":2},` +
				`{"hotel_slug":"seaside-inn","room_slug":"standard","room_image":null,"room_title":"Standard","bedroom_count":1}]`,
		},
		{
			name: "no rooms",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().GetByHotelSlug(gomock.Any(), "seaside-inn").Return([]dto.RoomResponse{}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `[]`,
		},
		{
			name: "storage error",
			setupMock: func(svc *roomMocks.MockRoomService) {
				svc.EXPECT().GetByHotelSlug(gomock.Any(), "seaside-inn").Return([]dto.RoomResponse{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error","details":"connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := roomMocks.NewMockRoomService(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/seaside-inn/rooms", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_GetRoomsByHotelSlug_EscapedSlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := roomMocks.NewMockRoomService(ctrl)

	svc.EXPECT().GetByHotelSlug(gomock.Any(), "café").Return([]dto.RoomResponse{}, nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/caf%c3%a9/rooms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_CreateRoom(t *testing.T) {
	fields := map[string]string{
		"hotel_slug":    "seaside-inn",
		"room_slug":     "deluxe",
		"room_title":    "Deluxe",
		"bedroom_count": "2",
	}

	t.Run("with image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := roomMocks.NewMockRoomService(ctrl)

		stored := "/uploads/room_image-1-1.png"

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error) {
				assert.Equal(t, 2, req.BedroomCount)
				require.NotNil(t, req.Image)
				assert.Equal(t, "deluxe.png", req.Image.Filename)

				return dto.RoomResponse{HotelSlug: req.HotelSlug, RoomSlug: req.RoomSlug, RoomImage: &stored, RoomTitle: req.RoomTitle, BedroomCount: 2}, nil
			})

		body, contentType := roomForm(t, fields, "deluxe.png")

		req := httptest.NewRequest(http.MethodPost, "/api/room", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"hotel_slug":"seaside-inn","room_slug":"deluxe","room_image":"/uploads/room_image-1-1.png","room_title":"Deluxe","bedroom_count":2}`, rec.Body.String())
	})

	t.Run("without image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := roomMocks.NewMockRoomService(ctrl)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error) {
				assert.Nil(t, req.Image)

				return dto.RoomResponse{HotelSlug: req.HotelSlug, RoomSlug: req.RoomSlug}, nil
			})

		body, contentType := roomForm(t, fields)

		req := httptest.NewRequest(http.MethodPost, "/api/room", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"room_image":null`)
	})

	t.Run("json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := roomMocks.NewMockRoomService(ctrl)

		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error) {
				assert.Equal(t, "https://cdn.example.com/deluxe.png", req.RoomImage)

				return dto.RoomResponse{HotelSlug: req.HotelSlug, RoomSlug: req.RoomSlug}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/room", strings.NewReader(
			`{"hotel_slug":"seaside-inn","room_slug":"deluxe","room_image":"https://cdn.example.com/deluxe.png"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	failures := []struct {
		name   string
		fields map[string]string
		files  []string
		detail string
	}{
		{
			name:   "missing room slug",
			fields: map[string]string{"hotel_slug": "seaside-inn"},
			detail: "RoomSlug is required",
		},
		{
			name:   "bad bedroom count",
			fields: map[string]string{"hotel_slug": "seaside-inn", "room_slug": "deluxe", "bedroom_count": "many"},
			detail: "bedroom_count",
		},
		{
			name:   "two images",
			fields: fields,
			files:  []string{"a.png", "b.png"},
			detail: "at most one file",
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := roomMocks.NewMockRoomService(ctrl)

			body, contentType := roomForm(t, tt.fields, tt.files...)

			req := httptest.NewRequest(http.MethodPost, "/api/room", body)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.detail)
		})
	}

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := roomMocks.NewMockRoomService(ctrl)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.RoomResponse{}, errors.New("connection refused"))

		body, contentType := roomForm(t, fields)

		req := httptest.NewRequest(http.MethodPost, "/api/room", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error","details":"connection refused"}`, rec.Body.String())
	})
}
