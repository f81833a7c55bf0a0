package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneyledger/money-ledger/internal/models"
)

func TestCreateTransactionHandler(t *testing.T) {
	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	description := "Groceries"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(creator *MockTransactionCreator)
		expectedStatusCode int
	}{
		{
			name:        "successful create",
			requestBody: CreateTransactionRequest{Type: "PAY", Date: date, Description: &description},
			setupMocks: func(creator *MockTransactionCreator) {
				creator.EXPECT().Save(gomock.Any(), models.OperationPAY, date, &description).
					Return(&models.TransactionDB{ID: 1, Type: models.OperationPAY, Date: date, Description: &description}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "without description",
			requestBody: CreateTransactionRequest{Type: "DEP", Date: date},
			setupMocks: func(creator *MockTransactionCreator) {
				creator.EXPECT().Save(gomock.Any(), models.OperationDEP, date, nil).
					Return(&models.TransactionDB{ID: 2, Type: models.OperationDEP, Date: date}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(creator *MockTransactionCreator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown operation",
			requestBody:        CreateTransactionRequest{Type: "DEPOSIT", Date: date},
			setupMocks:         func(creator *MockTransactionCreator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "missing date",
			requestBody:        CreateTransactionRequest{Type: "PAY"},
			setupMocks:         func(creator *MockTransactionCreator) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "storage failure",
			requestBody: CreateTransactionRequest{Type: "PAY", Date: date},
			setupMocks: func(creator *MockTransactionCreator) {
				creator.EXPECT().Save(gomock.Any(), models.OperationPAY, date, nil).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creator := NewMockTransactionCreator(ctrl)
			tt.setupMocks(creator)

			req := httptest.NewRequest(http.MethodPost, "/transactions", encodeBody(t, tt.requestBody))
			rec := httptest.NewRecorder()

			NewCreateTransactionHandler(creator).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

func TestListTransactionsHandler(t *testing.T) {
	walletID := int64(3)

	tests := []struct {
		name               string
		target             string
		setupMocks         func(lister *MockTransactionLister)
		expectedStatusCode int
	}{
		{
			name:   "without filter",
			target: "/transactions",
			setupMocks: func(lister *MockTransactionLister) {
				lister.EXPECT().List(gomock.Any(), 0, 100, nil).
					Return([]models.TransactionDB{{ID: 1}}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:   "with wallet filter",
			target: "/transactions?wallet_id=3",
			setupMocks: func(lister *MockTransactionLister) {
				lister.EXPECT().List(gomock.Any(), 0, 100, &walletID).
					Return([]models.TransactionDB{}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "invalid wallet filter",
			target:             "/transactions?wallet_id=-3",
			setupMocks:         func(lister *MockTransactionLister) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:   "storage failure",
			target: "/transactions",
			setupMocks: func(lister *MockTransactionLister) {
				lister.EXPECT().List(gomock.Any(), 0, 100, nil).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lister := NewMockTransactionLister(ctrl)
			tt.setupMocks(lister)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			NewListTransactionsHandler(lister).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if tt.expectedStatusCode == http.StatusOK {
				var got []models.TransactionDB
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			}
		})
	}
}
