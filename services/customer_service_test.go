package services

import (
	"regexp"
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) *CustomerService {
	t.Helper()
	db := newTestDB(t, &entity.Customer{})
	return NewCustomerService(db, repository.NewCustomerRepository(db))
}

func TestCustomerCreateRoundTrip(t *testing.T) {
	svc := newCustomerService(t)

	cust, err := svc.Create("restro-1", &CreateCustomerReq{
		Name:     "Asha",
		Email:    "  Asha@Example.com ",
		Password: "secret",
	})
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^CUSTOMER-\d+$`), cust.CustomerID)
	require.Equal(t, "asha@example.com", cust.Email)

	got, err := svc.Get("restro-1", cust.CustomerID)
	require.NoError(t, err)
	require.Equal(t, cust.Email, got.Email)
	require.NotEqual(t, "secret", got.Password)
}

func TestCustomerEmailUniquePerRestaurant(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Create("restro-1", &CreateCustomerReq{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	_, err = svc.Create("restro-1", &CreateCustomerReq{Name: "B", Email: "A@X.COM", Password: "p"})
	require.ErrorIs(t, err, ErrEmailTaken)

	// Same email under another tenant is fine.
	_, err = svc.Create("restro-2", &CreateCustomerReq{Name: "B", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
}

func TestCustomerLogin(t *testing.T) {
	svc := newCustomerService(t)

	created, err := svc.Create("restro-1", &CreateCustomerReq{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	got, err := svc.Login("restro-1", "ASHA@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, created.CustomerID, got.CustomerID)
	require.Empty(t, got.Password)

	_, err = svc.Login("restro-1", "asha@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("restro-1", "nobody@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCustomerPartialUpdate(t *testing.T) {
	svc := newCustomerService(t)

	cust, err := svc.Create("restro-1", &CreateCustomerReq{Name: "Asha", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	name := "Asha K"
	updated, err := svc.Update("restro-1", cust.CustomerID, &UpdateCustomerReq{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Asha K", updated.Name)
	require.Equal(t, "a@x.com", updated.Email)

	_, err = svc.Update("restro-1", "CUSTOMER-404", &UpdateCustomerReq{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}
