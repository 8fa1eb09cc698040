package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/money_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/money_tracker/internal/core/ports/services"
	"github.com/SscSPs/money_tracker/internal/dto"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauthstate"

// GoogleOAuthHandler handles Google sign-in, both the ID token flow used by
// the web client and the server-side redirect flow.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	frontendBaseURL    string
	secureCookies      bool
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	frontendBaseURL string,
	secureCookies bool,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		frontendBaseURL:    strings.TrimRight(frontendBaseURL, "/"),
		secureCookies:      secureCookies,
	}
}

// SignInWithIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates the ID token, finds or creates the matching user and returns an application JWT
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   token body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Missing token"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 500 {object} ErrorResponse "Failed to sign in with Google"
// @Router /auth/google [post]
func (h *GoogleOAuthHandler) SignInWithIDToken(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request payload", err)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.WarnContext(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	info := domain.GoogleUserInfo{ID: payload.Subject, Email: email, Name: name, VerifiedEmail: verified}

	resp, err := h.signIn(c, logger, info)
	if err != nil {
		respondError(c, logger, err, "Failed to sign in with Google")
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *GoogleOAuthHandler) signIn(c *gin.Context, logger *slog.Logger, info domain.GoogleUserInfo) (dto.LoginResponse, error) {
	if info.ID == "" {
		return dto.LoginResponse{}, errors.New("google account id missing")
	}
	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), info)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	logger.InfoContext(c.Request.Context(), "User signed in via Google", slog.String("user_id", user.UserID))
	return issueToken(c.Request.Context(), h.tokenService, user)
}

// LoginRedirect godoc
// @Summary Start the Google OAuth redirect flow
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginRedirect(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// Callback godoc
// @Summary Google OAuth callback
// @Description Exchanges the authorization code, signs the user in and redirects to the frontend with the token
// @Tags auth
// @Param   state query string true "OAuth state"
// @Param   code query string true "Authorization code"
// @Success 307 "Redirect to the frontend"
// @Success 200 {object} dto.LoginResponse "When no frontend URL is configured"
// @Failure 400 {object} ErrorResponse "State mismatch or missing code"
// @Failure 401 {object} ErrorResponse "Code rejected by Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		logger.WarnContext(ctx, "OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code is required"})
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authorization code"})
		return
	}
	info, err := h.googleOAuthService.GetUserInfo(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
		return
	}

	resp, err := h.signIn(c, logger, *info)
	if err != nil {
		respondError(c, logger, err, "Failed to sign in with Google")
		return
	}

	if h.frontendBaseURL == "" {
		respondData(c, http.StatusOK, resp)
		return
	}
	target := h.frontendBaseURL + "/auth/callback?" + url.Values{"token": {resp.Token}}.Encode()
	c.Redirect(http.StatusTemporaryRedirect, target)
}
