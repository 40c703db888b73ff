package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stayadmin/config"
	"stayadmin/infras/otel/mocks"
	rtMocks "stayadmin/internal/domains/roomtype/mocks"
	"stayadmin/internal/domains/roomtype/model"
	"stayadmin/internal/domains/roomtype/model/dto"
	"stayadmin/internal/domains/roomtype/service"
	cacheMocks "stayadmin/shared/cache/mocks"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/failure"
)

func newService(ctrl *gomock.Controller) (service.RoomType, *rtMocks.MockRoomType, *cacheMocks.MockRedisCache) {
	mockRepo := rtMocks.NewMockRoomType(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomTypeService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*rtMocks.MockRoomType, *cacheMocks.MockRedisCache)
		wantKind  failure.Kind
		wantName  string
	}{
		{
			name: "cache hit",
			setupMock: func(_ *rtMocks.MockRoomType, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "room_type:get:rt-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.RoomTypeResponse).Name = "Deluxe"

						return nil
					})
			},
			wantName: "Deluxe",
		},
		{
			name: "cache miss",
			setupMock: func(r *rtMocks.MockRoomType, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				r.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: "rt-1", Name: "Suite"}, true, nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantName: "Suite",
		},
		{
			name: "not found",
			setupMock: func(r *rtMocks.MockRoomType, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				r.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, false, nil)
			},
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockRepo, mockCache := newService(ctrl)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), "rt-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
		})
	}
}

func TestRoomTypeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo, mockCache := newService(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomType{{ID: "rt-1"}}, nil)
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.RoomTypes, 1)
}

func TestRoomTypeService_GetBookableTx(t *testing.T) {
	tests := []struct {
		name     string
		roomType model.RoomType
		found    bool
		err      error
		wantKind failure.Kind
	}{
		{name: "active", roomType: model.RoomType{ID: "rt-1", Active: true}, found: true},
		{name: "inactive", roomType: model.RoomType{ID: "rt-1"}, found: true, wantKind: failure.KindValidation},
		{name: "unknown", found: false, wantKind: failure.KindValidation},
		{name: "storage", err: errors.New("conn refused"), wantKind: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockRepo, _ := newService(ctrl)

			mockRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), false, gomock.Any()).Return(tt.roomType, tt.found, tt.err)

			res, err := svc.GetBookableTx(context.Background(), nil, "rt-1")
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "rt-1", res.ID)
		})
	}
}

func TestRoomType_Fits(t *testing.T) {
	assert.True(t, model.RoomType{Capacity: 0}.Fits(12))
	assert.True(t, model.RoomType{Capacity: 2}.Fits(2))
	assert.False(t, model.RoomType{Capacity: 2}.Fits(3))
}
