package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testUser() models.User {
	return models.User{
		FirstName:      "Ann",
		LastName:       "Lee",
		Phone:          testPhone,
		HashedPassword: "abc123",
		TosAgreement:   true,
	}
}

func newTestUserRepo(t *testing.T) (UserRepository, *mock.MockRecordStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordStore(ctrl)
	return NewUserRepository(records, logger.Nop()), records
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, records := newTestUserRepo(t)
	user := testUser()

	records.EXPECT().
		Create(gomock.Any(), models.UsersCategory, testPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, data []byte) error {
			assert.JSONEq(t, `{
				"firstName":"Ann","lastName":"Lee","phone":"5551234567",
				"hashedPassword":"abc123","tosAgreement":true
			}`, string(data))
			return nil
		})

	require.NoError(t, repo.CreateUser(context.Background(), user))
}

func TestUserRepository_CreateUserExists(t *testing.T) {
	repo, records := newTestUserRepo(t)

	records.EXPECT().
		Create(gomock.Any(), models.UsersCategory, testPhone, gomock.Any()).
		Return(ErrRecordAlreadyExists)

	err := repo.CreateUser(context.Background(), testUser())
	assert.ErrorIs(t, err, ErrRecordAlreadyExists)
}

func TestUserRepository_FindUserByPhone(t *testing.T) {
	repo, records := newTestUserRepo(t)
	want := testUser()
	data, err := json.Marshal(want)
	require.NoError(t, err)

	records.EXPECT().Read(gomock.Any(), models.UsersCategory, testPhone).Return(data, nil)

	got, err := repo.FindUserByPhone(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserRepository_FindUserByPhoneErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		readErr error
		wantErr error
	}{
		{name: "not found", readErr: ErrRecordNotFound, wantErr: ErrRecordNotFound},
		{name: "corrupted record", data: []byte(`{"phone":`), wantErr: ErrDecodingRecord},
		{name: "backend failure", readErr: errors.New("disk gone")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, records := newTestUserRepo(t)
			records.EXPECT().Read(gomock.Any(), models.UsersCategory, testPhone).Return(tt.data, tt.readErr)

			_, err := repo.FindUserByPhone(context.Background(), testPhone)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestUserRepository_UpdateUser(t *testing.T) {
	repo, records := newTestUserRepo(t)
	user := testUser()
	user.FirstName = "Anna"

	records.EXPECT().
		Update(gomock.Any(), models.UsersCategory, testPhone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, data []byte) error {
			var stored models.User
			require.NoError(t, json.Unmarshal(data, &stored))
			assert.Equal(t, "Anna", stored.FirstName)
			return nil
		})

	require.NoError(t, repo.UpdateUser(context.Background(), user))
}

func TestUserRepository_DeleteUser(t *testing.T) {
	repo, records := newTestUserRepo(t)

	records.EXPECT().Delete(gomock.Any(), models.UsersCategory, testPhone).Return(ErrRecordNotFound)

	assert.ErrorIs(t, repo.DeleteUser(context.Background(), testPhone), ErrRecordNotFound)
}

func TestUserRepository_OverFileStore(t *testing.T) {
	s, _ := newTestFileStore(t)
	repo := NewUserRepository(s, logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, testUser()))

	got, err := repo.FindUserByPhone(ctx, testPhone)
	require.NoError(t, err)
	assert.Equal(t, testUser(), got)

	require.NoError(t, repo.DeleteUser(ctx, testPhone))
	_, err = repo.FindUserByPhone(ctx, testPhone)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
