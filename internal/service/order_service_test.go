package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

func TestOrderService_Add(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	valid := OrderInput{
		Address:        map[string]interface{}{"city": "Almaty"},
		ContactDetails: "+7 700 000 0000",
		OrderedItems:   []interface{}{map[string]interface{}{"product": "p1", "qty": 2.0}},
		TotalPrice:     4,
	}

	tests := []struct {
		name          string
		input         OrderInput
		setupMock     func(*MockOrderRepository)
		expectedError error
	}{
		{
			name:  "successful order",
			input: valid,
			setupMock: func(m *MockOrderRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
					return o.UserID == "u1" && o.OrderDate.Equal(fixed) && o.TotalPrice == 4
				})).Return(nil)
			},
		},
		{
			name:  "empty item list is accepted",
			input: OrderInput{Address: valid.Address, ContactDetails: "x", OrderedItems: []interface{}{}},
			setupMock: func(m *MockOrderRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:          "missing address",
			input:         OrderInput{ContactDetails: "x", OrderedItems: []interface{}{}},
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
		{
			name:          "missing contact details",
			input:         OrderInput{Address: valid.Address, OrderedItems: []interface{}{}},
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
		{
			name:          "missing items",
			input:         OrderInput{Address: valid.Address, ContactDetails: "x"},
			setupMock:     func(m *MockOrderRepository) {},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockOrderRepository)
			tt.setupMock(mockRepo)

			service := &orderService{repo: mockRepo, now: func() time.Time { return fixed }}
			order, err := service.Add(context.Background(), "u1", tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, order)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", order.UserID)
			assert.Equal(t, tt.input.OrderedItems, order.OrderedItems)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_AddStoreFailure(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write failed"))

	service := NewOrderService(mockRepo)
	_, err := service.Add(context.Background(), "u1", OrderInput{
		Address:        map[string]interface{}{},
		ContactDetails: "x",
		OrderedItems:   []interface{}{},
	})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrMissingFields)
}

func TestOrderService_ListForUser(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	owner := &model.User{ID: "u1", Username: "ada"}
	orders := []model.UserOrder{
		{Order: model.Order{ID: "o1", UserID: "u1", OrderedItems: []interface{}{"p1"}}, User: owner},
	}
	mockRepo.On("ListByUser", mock.Anything, "u1").Return(orders, nil)
	mockRepo.On("ListByUser", mock.Anything, "u2").Return([]model.UserOrder{}, nil)

	service := NewOrderService(mockRepo)

	got, err := service.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	got, err = service.ListForUser(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, got)
	mockRepo.AssertExpectations(t)
}
