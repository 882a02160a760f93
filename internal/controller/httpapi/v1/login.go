package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/license-management-toolkit/keyserve/config"
)

// LoginRoute authenticates the single admin credential pair from config and
// issues short-lived bearer tokens for the admin surface.
type LoginRoute struct {
	cfg *config.Config
}

// Credentials -.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse -.
type TokenResponse struct {
	Token string `json:"token"`
}

func NewLoginRoute(cfg *config.Config) *LoginRoute {
	return &LoginRoute{cfg: cfg}
}

// Login exchanges admin credentials for a signed JWT.
func (r *LoginRoute) Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})

		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(r.cfg.Auth.AdminUsername)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(r.cfg.Auth.AdminPassword)) == 1

	if !usernameOK || !passwordOK {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})

		return
	}

	expiration := r.cfg.Auth.JWTExpiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}

	claims := jwt.RegisteredClaims{
		Subject:   creds.Username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(r.cfg.Auth.JWTKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})

		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: signed})
}

// JWTAuthMiddleware guards the admin routes. Expects an Authorization header
// of the form "Bearer <token>".
func (r *LoginRoute) JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})

			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})

			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(r.cfg.Auth.JWTKey), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})

			return
		}

		c.Next()
	}
}
