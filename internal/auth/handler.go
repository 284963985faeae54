package auth

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register は POST /register のハンドラーです。
func (m *Manager) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "Username and password are required",
		})
		return
	}

	if err := m.users.Register(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{
				"code":    "USERNAME_TAKEN",
				"message": "Username already exists",
			})
		case errors.Is(err, ErrInvalidUsername):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_INPUT",
				"message": "Username must be 3-20 alphanumeric characters",
			})
		case errors.Is(err, ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_INPUT",
				"message": "Password must be at least 6 characters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Failed to register user",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User successfully registered",
	})
}

// Login は POST /login および POST /customer/login のハンドラーです。
// 認証に成功するとトークンを発行し、セッションに紐づけます。
func (m *Manager) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "Username and password are required",
		})
		return
	}

	if !m.users.Authenticate(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":    "INVALID_CREDENTIALS",
			"message": "Invalid username or password",
		})
		return
	}

	token, err := m.tokens.Issue(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "TOKEN_GENERATION_FAILED",
			"message": "Failed to issue access token",
		})
		return
	}

	// 再ログイン時は既存のトークンを上書きする
	session := sessions.Default(c)
	AttachToken(session, token)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "SESSION_SAVE_FAILED",
			"message": "Failed to save session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User successfully logged in",
		"token":   token,
	})
}

// Logout は POST /customer/logout のハンドラーです。
func (m *Manager) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "SESSION_SAVE_FAILED",
			"message": "Failed to clear session",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User successfully logged out",
	})
}
