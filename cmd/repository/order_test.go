package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

func TestOrderListRecent(t *testing.T) {
	conn, mock := newMock(t)
	ts := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN customers c ON c.id = o.customer_id ORDER BY o.created_at DESC LIMIT $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "total_amount", "status", "created_at", "name"}).
			AddRow("o1", "DH-0002", "150000.00", "delivered", ts, "Nguyễn Văn A").
			AddRow("o2", "DH-0001", "99000.00", "pending", ts.Add(-time.Hour), nil))

	orders, err := NewOrderRepo(conn).ListRecent(context.Background(), nil, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, model.OrderDelivered, orders[0].Status)
	require.NotNil(t, orders[0].Customer)
	assert.Equal(t, "Nguyễn Văn A", orders[0].Customer.Name)
	assert.Equal(t, 150000.0, orders[0].TotalAmount)
	assert.Nil(t, orders[1].Customer)
}

func TestOrderListRecentByStatus(t *testing.T) {
	conn, mock := newMock(t)
	status := model.OrderShipped

	mock.ExpectQuery(regexp.QuoteMeta("WHERE o.status = $1 ORDER BY o.created_at DESC LIMIT $2")).
		WithArgs("shipped", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "total_amount", "status", "created_at", "name"}))

	orders, err := NewOrderRepo(conn).ListRecent(context.Background(), &status, 5)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderListForStats(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, order_number, total_amount, status, created_at FROM orders")).
		WillReturnError(errors.New("timeout"))

	_, err := NewOrderRepo(conn).ListForStats(context.Background())
	assert.ErrorContains(t, err, "error loading orders for stats: timeout")
}

func TestCustomerCountActive(t *testing.T) {
	conn, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM customers WHERE is_active = true")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := NewCustomerRepo(conn).CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}
