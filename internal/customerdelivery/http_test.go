package customerdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sunbelt-bank/bank-core/internal/customerservice"
	"github.com/sunbelt-bank/bank-core/internal/domain"
)

func newTestRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(service)

	router := gin.New()
	router.POST("/customers", handler.Create)
	router.GET("/customers/:name", handler.Get)
	router.GET("/customers/:name/teller", handler.GetForTeller)
	router.POST("/customers/:name/statements", handler.Statement)
	router.POST("/customers/:name/summaries", handler.Summary)

	return router
}

func TestCreateAPI(t *testing.T) {
	arg := domain.CreateCustomerParams{
		FirstName:   "Maya",
		LastName:    "Ortiz",
		DateOfBirth: "23-May-1999",
		Address:     "800 Sun Bowl Dr, El Paso, TX",
		PhoneNumber: "(915) 555-0199",
	}

	body := gin.H{
		"first_name":    arg.FirstName,
		"last_name":     arg.LastName,
		"date_of_birth": arg.DateOfBirth,
		"address":       arg.Address,
		"phone_number":  arg.PhoneNumber,
	}

	testCases := []struct {
		name       string
		body       gin.H
		buildStubs func(service *MockService)
		wantStatus int
	}{
		{
			name: "OK",
			body: body,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(customerservice.NewCustomer{
						Customer:    domain.Customer{ID: 4, FirstName: arg.FirstName, LastName: arg.LastName},
						CreditScore: 700,
						Secret:      "s3cr3t42",
					}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "MissingFirstName",
			body: gin.H{"last_name": "Ortiz", "date_of_birth": "23-May-1999", "address": "x", "phone_number": "y"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "DateOfBirthTooLong",
			body: gin.H{
				"first_name":    "Maya",
				"last_name":     "Ortiz",
				"date_of_birth": "the 23rd of May, 1999",
				"address":       "800 Sun Bowl Dr",
				"phone_number":  "(915) 555-019",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "DuplicateName",
			body: body,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(customerservice.NewCustomer{}, domain.ErrNameAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			router := newTestRouter(service)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/customers", bytes.NewReader(body))
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatus, recorder.Code)
		})
	}
}

func TestGetAPI(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		buildStubs func(service *MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "OK",
			target: "/customers/Diego%20Luna",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ManagerView(gomock.Any(), gomock.Eq("Diego Luna")).
					Times(1).
					Return(domain.Customer{
						ID:        3,
						FirstName: "Diego",
						LastName:  "Luna",
						Credit: domain.CreditAccount{
							Account: domain.Account{Number: 32, Balance: decimal.NewFromInt(-100)},
							Max:     decimal.NewFromInt(5000),
						},
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "\"credit_max\":\"5000\"",
		},
		{
			name:   "NotFound",
			target: "/customers/Nobody%20Here",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ManagerView(gomock.Any(), gomock.Eq("Nobody Here")).
					Times(1).
					Return(domain.Customer{}, domain.ErrCustomerNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			router := newTestRouter(service)

			request, err := http.NewRequest(http.MethodGet, tc.target, nil)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatus, recorder.Code)
			if tc.wantBody != "" {
				require.Contains(t, recorder.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestGetForTellerAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		ViewForTeller(gomock.Any(), gomock.Eq("Diego Luna")).
		Times(1).
		Return(customerservice.TellerView{ID: 3, FullName: "Diego Luna", Secret: "s3cr3t42"}, nil)

	router := newTestRouter(service)

	request, err := http.NewRequest(http.MethodGet, "/customers/Diego%20Luna/teller", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "s3cr3t42")
}

func TestStatementAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Statement(gomock.Any(), gomock.Eq("Diego Luna")).
		Times(1).
		Return("statements/BankStatement_3.txt", nil)

	router := newTestRouter(service)

	request, err := http.NewRequest(http.MethodPost, "/customers/Diego%20Luna/statements", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "BankStatement_3.txt")
}

func TestSummaryAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Summary(gomock.Any(), gomock.Eq("Diego Luna")).
		Times(1).
		Return("statements/Diego_Luna_Transactions.txt", nil)

	router := newTestRouter(service)

	request, err := http.NewRequest(http.MethodPost, "/customers/Diego%20Luna/summaries", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "Diego_Luna_Transactions.txt")
}
