package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	repomocks "github.com/limbo/habitmon/internal/repository/mocks"
	"github.com/limbo/habitmon/internal/service"
	"github.com/limbo/habitmon/internal/service/mocks"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	profiles := mocks.NewMockProfileEnsurer(ctrl)
	us := service.NewUserService(usersRepo, profiles)
	user := &entity.User{ID: uuid.New(), Name: "ash_ketchum"}
	testCases := []struct {
		Desc         string
		Req          service.RegisterRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Req:  service.RegisterRequest{Name: "ash_ketchum", Password: "pikachu123"},
			MockPrepFunc: func() {
				usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pikachu123")))
					return nil
				})
				usersRepo.EXPECT().FindByName(gomock.Any(), "ash_ketchum").Return(user, nil)
				profiles.EXPECT().Ensure(gomock.Any(), "ash_ketchum").Return(nil)
			},
		},
		{
			Desc:         "short password",
			Req:          service.RegisterRequest{Name: "ash_ketchum", Password: "pika"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "name starts with digit",
			Req:          service.RegisterRequest{Name: "1ash", Password: "pikachu123"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "existing user",
			Req:   service.RegisterRequest{Name: "ash_ketchum", Password: "pikachu123"},
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := us.Register(context.Background(), &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user, res)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	profiles := mocks.NewMockProfileEnsurer(ctrl)
	us := service.NewUserService(usersRepo, profiles)
	hash, err := service.Hash("pikachu123")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "ash", PasswordHash: hash}

	t.Run("success creates missing profile", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "ash").Return(user, nil)
		profiles.EXPECT().Ensure(gomock.Any(), "ash").Return(nil)
		res, err := us.Login(context.Background(), "ash", "pikachu123")
		require.NoError(t, err)
		assert.Equal(t, user, res)
	})
	t.Run("wrong password", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "ash").Return(user, nil)
		_, err := us.Login(context.Background(), "ash", "raichu123")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "gary").Return(nil, errorvalues.ErrUserNotFound)
		_, err := us.Login(context.Background(), "gary", "pikachu123")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("profile store down", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "ash").Return(user, nil)
		profiles.EXPECT().Ensure(gomock.Any(), "ash").Return(errors.New("db error"))
		_, err := us.Login(context.Background(), "ash", "pikachu123")
		assert.Error(t, err)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo, mocks.NewMockProfileEnsurer(ctrl))
	hash, err := service.Hash("pikachu123")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "ash", PasswordHash: hash}

	usersRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	assert.ErrorIs(t, us.DeleteAccount(context.Background(), user.ID, "wrong_password"), errorvalues.ErrWrongCredentials)

	usersRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
	usersRepo.EXPECT().Delete(gomock.Any(), user.ID).Return(nil)
	assert.NoError(t, us.DeleteAccount(context.Background(), user.ID, "pikachu123"))

	usersRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(nil, errorvalues.ErrUserNotFound)
	assert.ErrorIs(t, us.DeleteAccount(context.Background(), user.ID, "pikachu123"), errorvalues.ErrUserNotFound)
}
