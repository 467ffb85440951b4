package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saranyasailakshmi/DIV-Tech/models"
	"github.com/saranyasailakshmi/DIV-Tech/utils"
)

const currentUserKey = "currentUser"

// AuthMiddleware validates the Bearer access token and binds the resolved
// user to the request. Handlers pass that identity into services explicitly;
// nothing below the handler reads it from ambient state.
func AuthMiddleware(db *gorm.DB, tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.APIResponse(false, "missing Authorization header", nil))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.APIResponse(false, "invalid Authorization header format", nil))
			return
		}

		user, err := resolveUser(db, tokens, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				utils.APIResponse(false, err.Error(), nil))
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func resolveUser(db *gorm.DB, tokens *utils.TokenManager, tokenStr string) (*models.User, error) {
	claims, err := tokens.ParseAccess(tokenStr)
	if err != nil {
		return nil, errors.New("invalid or expired access token")
	}

	var user models.User
	if err := db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, errors.New("user is not active")
	}

	return &user, nil
}

// CurrentUser returns the user bound to the request by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}
