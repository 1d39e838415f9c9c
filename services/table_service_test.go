package services

import (
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
)

func newTableService(t *testing.T) *TableService {
	t.Helper()
	db := newTestDB(t, &entity.Table{})
	return NewTableService(db, repository.NewTableRepository(db))
}

func TestTableCreateRejectsDuplicateNo(t *testing.T) {
	svc := newTableService(t)

	_, err := svc.Create("restro-1", &CreateTableReq{TableNo: 4})
	require.NoError(t, err)

	_, err = svc.Create("restro-1", &CreateTableReq{TableNo: 4})
	require.ErrorIs(t, err, ErrValidation)

	// Same number under another tenant is a different table.
	_, err = svc.Create("restro-2", &CreateTableReq{TableNo: 4})
	require.NoError(t, err)
}

func TestTableSeatAndUnseat(t *testing.T) {
	svc := newTableService(t)

	_, err := svc.Create("restro-1", &CreateTableReq{TableNo: 4})
	require.NoError(t, err)

	seated, err := svc.Seat("restro-1", 4, "CUSTOMER-1")
	require.NoError(t, err)
	require.NotNil(t, seated.CustomerID)
	require.Equal(t, "CUSTOMER-1", *seated.CustomerID)

	cleared, err := svc.Unseat("restro-1", 4)
	require.NoError(t, err)
	require.Nil(t, cleared.CustomerID)
	require.Nil(t, cleared.OrderID)

	_, err = svc.Seat("restro-1", 9, "CUSTOMER-1")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Seat("restro-1", 4, "")
	require.ErrorIs(t, err, ErrValidation)
}
