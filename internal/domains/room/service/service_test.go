package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	storeMocks "hotelier/infras/objectstore/mocks"
	"hotelier/infras/otel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
)

func TestRoomService_GetByHotelSlug(t *testing.T) {
	image := "/uploads/room_image-1-1.png"

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantLen   int
		wantErr   bool
	}{
		{
			name: "rooms found",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetByHotelSlug(gomock.Any(), "seaside-inn").Return([]model.Room{
					{HotelSlug: "seaside-inn", RoomSlug: "deluxe", RoomImage: &image, RoomTitle: "Deluxe", BedroomCount: 2},
					{HotelSlug: "seaside-inn", RoomSlug: "standard", RoomTitle: "Standard", BedroomCount: 1},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name: "no rooms",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetByHotelSlug(gomock.Any(), "seaside-inn").Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().GetByHotelSlug(gomock.Any(), "seaside-inn").Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, storeMocks.NewMockObjectStore(ctrl), mocks.NewOtel())

			rooms, err := svc.GetByHotelSlug(context.Background(), "seaside-inn")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, rooms)
			assert.Len(t, rooms, tt.wantLen)
		})
	}
}

func TestRoomService_Create(t *testing.T) {
	stored := "/uploads/room_image-1-1.png"

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom, store *storeMocks.MockObjectStore)
		wantImage *string
		wantErr   bool
	}{
		{
			name: "with uploaded image",
			req: dto.CreateRoomRequest{
				HotelSlug: "seaside-inn",
				RoomSlug:  "deluxe",
				Image:     &multipart.FileHeader{Filename: "deluxe.png"},
			},
			setupMock: func(repo *roomMocks.MockRoom, store *storeMocks.MockObjectStore) {
				store.EXPECT().Save(gomock.Any(), constant.FormFieldRoomImage, gomock.Any()).Return(stored, nil)
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
						return room, nil
					})
			},
			wantImage: &stored,
		},
		{
			name: "without image stores null",
			req: dto.CreateRoomRequest{
				HotelSlug: "seaside-inn",
				RoomSlug:  "standard",
			},
			setupMock: func(repo *roomMocks.MockRoom, _ *storeMocks.MockObjectStore) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
						return room, nil
					})
			},
		},
		{
			name: "upload failure",
			req: dto.CreateRoomRequest{
				HotelSlug: "seaside-inn",
				RoomSlug:  "deluxe",
				Image:     &multipart.FileHeader{Filename: "deluxe.png"},
			},
			setupMock: func(_ *roomMocks.MockRoom, store *storeMocks.MockObjectStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("read-only file system"))
			},
			wantErr: true,
		},
		{
			name: "repository error deletes stored image",
			req: dto.CreateRoomRequest{
				HotelSlug: "seaside-inn",
				RoomSlug:  "deluxe",
				Image:     &multipart.FileHeader{Filename: "deluxe.png"},
			},
			setupMock: func(repo *roomMocks.MockRoom, store *storeMocks.MockObjectStore) {
				store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("connection refused"))
				store.EXPECT().Delete(gomock.Any(), stored).Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := roomMocks.NewMockRoom(ctrl)
			mockStore := storeMocks.NewMockObjectStore(ctrl)
			tt.setupMock(mockRepo, mockStore)

			svc := service.New(mockRepo, mockStore, mocks.NewOtel())

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.RoomSlug, res.RoomSlug)
			assert.Equal(t, tt.wantImage, res.RoomImage)
		})
	}
}
