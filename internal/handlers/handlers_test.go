package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/handlers"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-1"

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string

	transactions *MockTransactionService
	accounts     *MockAccountService
	transfers    *MockTransferService
	categories   *MockCategoryService
	reporting    *MockReportingService
	users        *MockUserService
	tokens       *MockTokenService
	google       *MockGoogleOAuthService
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwtSecret = "test-secret-key-that-is-long-enough"

	s.transactions = new(MockTransactionService)
	s.accounts = new(MockAccountService)
	s.transfers = new(MockTransferService)
	s.categories = new(MockCategoryService)
	s.reporting = new(MockReportingService)
	s.users = new(MockUserService)
	s.tokens = new(MockTokenService)
	s.google = new(MockGoogleOAuthService)

	cfg := &config.Config{
		JWTSecret:     s.jwtSecret,
		IsProduction:  true,
		RateLimit:     "1000-M",
		AuthRateLimit: "1000-M",
	}
	container := &portssvc.ServiceContainer{
		Account:     s.accounts,
		Transfer:    s.transfers,
		Transaction: s.transactions,
		Category:    s.categories,
		Reporting:   s.reporting,
		User:        s.users,
		Token:       s.tokens,
		GoogleOAuth: s.google,
	}

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, container))
}

// generateTestToken creates a JWT for testUserID.
func (s *HandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT(testUserID, s.jwtSecret, time.Hour, "test", time.Now())
	s.Require().NoError(err)
	return token
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.generateTestToken())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decodeData(w *httptest.ResponseRecorder, out any) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	s.Require().NoError(json.Unmarshal(envelope.Data, out))
}

func (s *HandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body handlers.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Error
}

const validTransaction = `{"type":"expense","amount":12.5,"description":"Lunch","category":"Food","division":"office","date":"2024-05-15"}`

// --- Test Cases ---

func (s *HandlerTestSuite) TestHealth() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil))
	s.Equal(http.StatusUnauthorized, w.Code)
	s.transactions.AssertNotCalled(s.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateTransaction_Success() {
	s.transactions.On("CreateTransaction", mock.Anything, testUserID, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Amount.Money() == 1250 && req.Description == "Lunch" && req.Division == domain.Office
	})).Return(&dto.TransactionResponse{TransactionID: "t1", Amount: 1250, IsEditable: true}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/transactions", validTransaction)

	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var got dto.TransactionResponse
	s.decodeData(w, &got)
	s.Equal("t1", got.TransactionID)
	s.Equal(domain.Money(1250), got.Amount.Money())
	s.True(got.IsEditable)
	s.transactions.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestCreateTransaction_RejectsInvalidInput() {
	tests := []struct {
		name string
		body string
	}{
		{"blank description", `{"type":"expense","amount":1,"description":"   ","category":"Food","division":"office","date":"2024-05-15"}`},
		{"zero amount", `{"type":"expense","amount":0,"description":"x","category":"Food","division":"office","date":"2024-05-15"}`},
		{"negative amount", `{"type":"expense","amount":-5,"description":"x","category":"Food","division":"office","date":"2024-05-15"}`},
		{"sub-cent amount", `{"type":"expense","amount":0.001,"description":"x","category":"Food","division":"office","date":"2024-05-15"}`},
		{"unknown type", `{"type":"refund","amount":1,"description":"x","category":"Food","division":"office","date":"2024-05-15"}`},
		{"unknown division", `{"type":"income","amount":1,"description":"x","category":"Food","division":"family","date":"2024-05-15"}`},
		{"impossible date", `{"type":"income","amount":1,"description":"x","category":"Food","division":"office","date":"2024-02-30"}`},
		{"long description", fmt.Sprintf(`{"type":"income","amount":1,"description":"%s","category":"Food","division":"office","date":"2024-05-15"}`, strings.Repeat("a", 201))},
		{"malformed json", `{"type":`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/api/v1/transactions", tt.body)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	s.transactions.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateTransaction_AccountNotFound() {
	s.transactions.On("CreateTransaction", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: acc-9", apperrors.ErrAccountNotFound)).Once()

	w := s.do(http.MethodPost, "/api/v1/transactions", validTransaction)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestUpdateTransaction_EditWindowExpired() {
	s.transactions.On("UpdateTransaction", mock.Anything, testUserID, "t1", mock.Anything).
		Return(nil, fmt.Errorf("%w: transaction t1", apperrors.ErrEditWindowExpired)).Once()

	w := s.do(http.MethodPut, "/api/v1/transactions/t1", validTransaction)

	s.Equal(http.StatusForbidden, w.Code)
	s.Contains(s.errorMessage(w), "edit window expired")
}

func (s *HandlerTestSuite) TestDeleteTransaction() {
	s.transactions.On("DeleteTransaction", mock.Anything, testUserID, "t1").Return(nil).Once()
	s.transactions.On("DeleteTransaction", mock.Anything, testUserID, "missing").
		Return(fmt.Errorf("%w: transaction missing", apperrors.ErrNotFound)).Once()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/transactions/t1", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/v1/transactions/missing", "").Code)
	s.transactions.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestListTransactions_PassesFilters() {
	next := "token-2"
	s.transactions.On("ListTransactions", mock.Anything, testUserID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Type == "expense" && p.Search == "taxi" && p.StartDate == "2024-05-01" && p.Limit == 2
	})).Return(&dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{{TransactionID: "t2"}, {TransactionID: "t1"}},
		NextToken:    &next,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions?type=expense&search=taxi&startDate=2024-05-01&limit=2", "")

	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var got dto.ListTransactionsResponse
	s.decodeData(w, &got)
	s.Len(got.Transactions, 2)
	s.Require().NotNil(got.NextToken)
	s.Equal("token-2", *got.NextToken)
}

func (s *HandlerTestSuite) TestListTransactions_InvalidFilter() {
	s.transactions.On("ListTransactions", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown transaction type", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions?type=refund", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDailyRouteIsNotTreatedAsID() {
	s.transactions.On("ListTransactionsByDay", mock.Anything, testUserID, mock.Anything).
		Return([]dto.DayGroupResponse{{Date: "2024-05-15", Income: 100}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions/daily", "")

	s.Equal(http.StatusOK, w.Code)
	s.transactions.AssertNotCalled(s.T(), "GetTransactionByID", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestTransferMoney() {
	s.transfers.On("TransferMoney", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
		return r.FromAccountID == "a" && r.ToAccountID == "a"
	})).Return(nil, fmt.Errorf("%w: same account", apperrors.ErrInvalidTransfer)).Once()
	s.transfers.On("TransferMoney", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
		return r.ToAccountID == "ghost"
	})).Return(nil, fmt.Errorf("%w: ghost", apperrors.ErrAccountNotFound)).Once()
	s.transfers.On("TransferMoney", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
		return r.FromAccountID == "a" && r.ToAccountID == "b" && r.Amount.Money() > 0
	})).Return(&domain.Transfer{TransferID: "tr1", FromAccountID: "a", ToAccountID: "b", Amount: 5000}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts/transfer", `{"fromAccountId":"a","toAccountId":"a","amount":10}`)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/accounts/transfer", `{"fromAccountId":"a","toAccountId":"ghost","amount":10}`)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/accounts/transfer", `{"fromAccountId":"a","toAccountId":"b","amount":50}`)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	var got dto.TransferResponse
	s.decodeData(w, &got)
	s.Equal("tr1", got.TransferID)
	s.Equal(domain.Money(5000), got.Amount.Money())
}

func (s *HandlerTestSuite) TestTransferMoney_ZeroAmountReachesBalanceRules() {
	s.transfers.On("TransferMoney", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreateTransferRequest) bool {
		return r.Amount.Money() == 0
	})).Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrInvalidTransfer)).Twice()

	for _, body := range []string{
		`{"fromAccountId":"a","toAccountId":"b","amount":0}`,
		`{"fromAccountId":"a","toAccountId":"b"}`,
	} {
		w := s.do(http.MethodPost, "/api/v1/accounts/transfer", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
		s.Contains(s.errorMessage(w), "invalid transfer", body)
	}
	s.transfers.AssertExpectations(s.T())
}

func (s *HandlerTestSuite) TestAccountRoutes() {
	s.accounts.On("GetTotalBalance", mock.Anything, testUserID).Return(domain.Money(15000), 2, nil).Once()
	s.accounts.On("DeleteAccount", mock.Anything, testUserID, "acc-1").
		Return(fmt.Errorf("%w: account acc-1 is still referenced", apperrors.ErrConflict)).Once()
	s.accounts.On("ListAccounts", mock.Anything, testUserID).Return(nil, errors.New("connection reset")).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts/total-balance", "")
	s.Equal(http.StatusOK, w.Code)
	var total dto.TotalBalanceResponse
	s.decodeData(w, &total)
	s.Equal(domain.Money(15000), total.TotalBalance.Money())
	s.Equal(2, total.AccountCount)

	s.Equal(http.StatusConflict, s.do(http.MethodDelete, "/api/v1/accounts/acc-1", "").Code)

	w = s.do(http.MethodGet, "/api/v1/accounts", "")
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("Failed to list accounts", s.errorMessage(w), "internal details must not leak")
}

func (s *HandlerTestSuite) TestEntityIDsAreSentAsID() {
	s.accounts.On("ListAccounts", mock.Anything, testUserID).
		Return([]domain.Account{{AccountID: "acc-1", UserID: testUserID, Name: "Wallet", AccountType: domain.Cash}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/accounts", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var rows []map[string]any
	s.decodeData(w, &rows)
	s.Require().Len(rows, 1)
	s.Equal("acc-1", rows[0]["id"])
	s.NotContains(rows[0], "_id")
}

func (s *HandlerTestSuite) TestCreateAccount_Duplicate() {
	s.accounts.On("CreateAccount", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: account named \"Wallet\"", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","type":"cash","balance":100}`)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","type":"piggybank"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCategoryRoutes() {
	s.categories.On("ListCategories", mock.Anything, testUserID, "income").
		Return([]domain.Category{{CategoryID: "c1", Name: "Salary", Type: domain.CategoryIncome, IsDefault: true}}, nil).Once()
	s.categories.On("CreateCategory", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w: category Food", apperrors.ErrValidation, apperrors.ErrDuplicate)).Once()
	s.categories.On("DeleteCategory", mock.Anything, testUserID, "c1").
		Return(fmt.Errorf("%w: default category", apperrors.ErrForbidden)).Once()
	s.categories.On("SeedDefaultCategories", mock.Anything, testUserID).Return(3, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/categories?type=income", "")
	s.Equal(http.StatusOK, w.Code)
	var listed []dto.CategoryResponse
	s.decodeData(w, &listed)
	s.Require().Len(listed, 1)
	s.True(listed[0].IsDefault)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/categories?type=transfer", "").Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/categories", `{"name":"Food","type":"expense","color":"#ff0000"}`).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodDelete, "/api/v1/categories/c1", "").Code)

	w = s.do(http.MethodPost, "/api/v1/categories/seed", "")
	s.Equal(http.StatusOK, w.Code)
	var seeded dto.SeedCategoriesResponse
	s.decodeData(w, &seeded)
	s.Equal(3, seeded.Created)
}

func (s *HandlerTestSuite) TestReport() {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.reporting.On("GetReport", mock.Anything, testUserID, dto.ReportParams{Period: "month"}).
		Return(&domain.PeriodReport{
			Period:    domain.PeriodMonth,
			StartDate: start,
			EndDate:   start.AddDate(0, 1, -1),
			Buckets:   []domain.ReportBucket{{Key: 15, Income: 0, Expense: 1250}},
			Totals:    domain.Totals{Expense: 1250, Balance: -1250},
		}, nil).Once()
	s.reporting.On("GetReport", mock.Anything, testUserID, dto.ReportParams{Period: "decade"}).
		Return(nil, fmt.Errorf("%w: unknown period", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodGet, "/api/v1/transactions/report", "")
	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var got dto.ReportResponse
	s.decodeData(w, &got)
	s.Equal("2024-05-31", got.EndDate)
	s.Require().Len(got.Data, 1)
	s.Equal(15, got.Data[0].Key)
	s.Equal(domain.Money(-1250), got.Totals.Balance.Money())

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/transactions/report?period=decade", "").Code)
}

func (s *HandlerTestSuite) TestDashboard() {
	s.reporting.On("GetDashboard", mock.Anything, testUserID, dto.ReportParams{Period: "week", Division: "office"}).
		Return(&dto.DashboardResponse{TotalBalance: 2500, Recent: []dto.TransactionResponse{{TransactionID: "t1"}}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard?period=week&division=office", "")

	s.Equal(http.StatusOK, w.Code)
	var got dto.DashboardResponse
	s.decodeData(w, &got)
	s.Equal(domain.Money(2500), got.TotalBalance.Money())
	s.Len(got.Recent, 1)
}

func (s *HandlerTestSuite) TestLogin() {
	user := &domain.User{UserID: testUserID, Username: "asha", Name: "Asha"}
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.users.On("AuthenticateUser", mock.Anything, "asha", "wrong-password").
		Return(nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)).Once()
	s.users.On("AuthenticateUser", mock.Anything, "asha", "right-password").Return(user, nil).Once()
	s.tokens.On("GenerateAccessToken", mock.Anything, user).Return("jwt-token", expires, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", `{"username":"asha","password":"wrong-password"}`)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid username or password", s.errorMessage(w))

	w = s.do(http.MethodPost, "/api/v1/auth/login", `{"username":"asha","password":"right-password"}`)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
	var got dto.LoginResponse
	s.decodeData(w, &got)
	s.Equal("jwt-token", got.Token)
	s.Equal(expires.Unix(), got.ExpiresAt)
	s.Require().NotNil(got.User)
	s.Equal("asha", got.User.Username)
}

func (s *HandlerTestSuite) TestRegister() {
	s.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(r dto.RegisterRequest) bool { return r.Username == "taken" })).
		Return(nil, fmt.Errorf("%w: username \"taken\"", apperrors.ErrDuplicate)).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/register", `{"username":"taken","password":"long-enough","name":"T"}`)
	s.Equal(http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/v1/auth/register", `{"username":"new","password":"short","name":"N"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGoogleCallback_RejectsStateMismatch() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauthstate", Value: "expected"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.google.AssertNotCalled(s.T(), "ExchangeCodeForToken", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestGoogleLoginRedirect() {
	s.google.On("GenerateStateString", mock.Anything).Return("state-123", nil).Once()
	s.google.On("GetGoogleLoginURL", mock.Anything, "state-123").Return("https://accounts.google.com/o/oauth2/auth?state=state-123").Once()

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/login", nil))

	s.Equal(http.StatusTemporaryRedirect, w.Code)
	s.Contains(w.Header().Get("Location"), "state-123")
	s.Contains(w.Header().Get("Set-Cookie"), "oauthstate=state-123")
}

func (s *HandlerTestSuite) TestGetMe() {
	s.users.On("GetUserByID", mock.Anything, testUserID).Return(&domain.User{UserID: testUserID, Username: "asha"}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/users/me", "")

	s.Equal(http.StatusOK, w.Code)
	var got dto.UserResponse
	s.decodeData(w, &got)
	s.Equal(testUserID, got.UserID)
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
