package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Decanton/Twitter-Clone/internal/common"
	"github.com/Decanton/Twitter-Clone/internal/server/users"
)

type signupRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// flowMessages maps flow sentinels to the short client-facing message. All
// flow errors are 400s; anything outside this table is a server error.
var flowMessages = map[error]string{
	common.ErrMissingFields:      "All fields are required",
	common.ErrInvalidEmail:       "Invalid email format",
	common.ErrUsernameTaken:      "Username already exists",
	common.ErrEmailTaken:         "Email already exists",
	common.ErrPasswordTooShort:   "Password must be at least 6 characters long",
	common.ErrMissingCredentials: "Username/email and password are required",
	common.ErrUserNotFound:       "User not found",
	common.ErrInvalidPassword:    "Invalid password",
}

// writeError converts a flow error into the outward error shape.
// Unrecognized errors are logged with full detail server-side and reported
// as a generic server error.
func (s *Server) writeError(c *gin.Context, err error) {
	for sentinel, msg := range flowMessages {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}
	s.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
}

func (s *Server) handleSignup(c *gin.Context) {

	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body carries no fields at all.
		s.writeError(c, common.ErrMissingFields)
		return
	}

	user, err := s.users.SignUp(c.Request.Context(), users.SignUpParams{
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.issuer.Attach(c.Writer, token)

	s.logger.Info(c.Request.Context(), "user signed up", "username", user.Username)
	c.JSON(http.StatusCreated, user)
}

func (s *Server) handleLogin(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrMissingCredentials)
		return
	}

	user, err := s.users.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.issuer.Attach(c.Writer, token)

	c.JSON(http.StatusOK, user)
}

// handleLogout always succeeds: it overwrites the session cookie with an
// expired value whether or not the caller was logged in.
func (s *Server) handleLogout(c *gin.Context) {
	s.issuer.Clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (s *Server) handleGetMe(c *gin.Context) {

	userID := c.GetString(contextUserIDKey)

	user, err := s.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// The token outlived the record; mirror the store's null result.
			c.JSON(http.StatusOK, nil)
			return
		}
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
