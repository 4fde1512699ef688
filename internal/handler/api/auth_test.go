//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"oasis-backend/internal/handler/api"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/tests/common/httptest"
	"oasis-backend/tests/common/testutil"
	commandsmock "oasis-backend/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.ctrl)
	s.handler = api.NewAuthHandler(s.mockCommands)

	s.router.POST("/api/auth/login", s.handler.Login)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/auth/login"
	reqBody := map[string]any{"email": "admin@oasis.travel", "password": "admin-password"}

	s.Run("success: bearer token in the envelope", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), commands.LoginInput{
			Email:    "admin@oasis.travel",
			Password: "admin-password",
		}).Return(&commands.LoginResult{Token: "signed-jwt", Email: "admin@oasis.travel"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("signed-jwt", response.Token)
		s.Equal("admin@oasis.travel", response.Email)
	})

	s.Run("error: 401 on rejected credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.Clone(reqBody)
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}
