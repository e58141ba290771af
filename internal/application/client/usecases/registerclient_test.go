package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

func TestRegisterClient_Success(t *testing.T) {
	repo := new(mockClientRepository)
	repo.On("ExistsByPhone", mock.Anything, "+212600000001").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*client.Client")).Return(nil)

	uc := NewRegisterClientUseCase(repo, noopLogger{})

	c, err := uc.Execute(context.Background(), RegisterClientCommand{
		FullName: "Youssef Amrani",
		Phone:    "+212600000001",
		Email:    "youssef@example.com",
		Gender:   "male",
	})

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Youssef Amrani", c.FullName())
	repo.AssertExpectations(t)
}

func TestRegisterClient_DuplicatePhone(t *testing.T) {
	repo := new(mockClientRepository)
	repo.On("ExistsByPhone", mock.Anything, "+212600000001").Return(true, nil)

	uc := NewRegisterClientUseCase(repo, noopLogger{})

	c, err := uc.Execute(context.Background(), RegisterClientCommand{
		FullName: "Youssef Amrani",
		Phone:    "+212600000001",
	})

	assert.Nil(t, c)
	assert.True(t, apperrors.IsConflictError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterClient_InvalidGender(t *testing.T) {
	repo := new(mockClientRepository)
	repo.On("ExistsByPhone", mock.Anything, "+212600000001").Return(false, nil)

	uc := NewRegisterClientUseCase(repo, noopLogger{})

	c, err := uc.Execute(context.Background(), RegisterClientCommand{
		FullName: "Youssef Amrani",
		Phone:    "+212600000001",
		Gender:   "unknown",
	})

	assert.Nil(t, c)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestUpdateClient_NotFound(t *testing.T) {
	repo := new(mockClientRepository)
	repo.On("GetByID", mock.Anything, uint(404)).Return(nil, nil)

	uc := NewUpdateClientUseCase(repo, noopLogger{})

	c, err := uc.Execute(context.Background(), UpdateClientCommand{ClientID: 404, FullName: "X", Phone: "+212"})

	assert.Nil(t, c)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateClient_EnrollsFingerprint(t *testing.T) {
	repo := new(mockClientRepository)

	existing, err := client.NewClient("Youssef Amrani", "+212600000001", "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(1))

	repo.On("GetByID", mock.Anything, uint(1)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	uc := NewUpdateClientUseCase(repo, noopLogger{})
	token := "FP-7f3a"

	c, err := uc.Execute(context.Background(), UpdateClientCommand{
		ClientID:         1,
		FullName:         "Youssef Amrani",
		Phone:            "+212600000001",
		FingerprintToken: &token,
	})

	require.NoError(t, err)
	require.NotNil(t, c.FingerprintID())
	assert.Equal(t, token, *c.FingerprintID())
}
