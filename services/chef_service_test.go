package services

import (
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
)

func TestChefLoginSanitizesRecord(t *testing.T) {
	db := newTestDB(t, &entity.Chef{})
	svc := NewChefService(db, repository.NewChefRepository(db))

	chef, err := svc.Create("restro-1", &CreateChefReq{
		Name:     "Remy",
		Email:    "remy@example.com",
		Password: "ratatouille",
	})
	require.NoError(t, err)
	require.Equal(t, "CHEF-1", chef.ChefID)

	got, err := svc.Login("restro-1", "remy@example.com", "ratatouille")
	require.NoError(t, err)
	require.Empty(t, got.Password)

	_, err = svc.Login("restro-1", "remy@example.com", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
