package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/domain"
)

const principalKey = "principal"

func sessionToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.GetHeader("X-Session-Token")
}

// authRequired восстанавливает учётную запись по сессионному токену
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		p, ok := s.gate.Principal(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// requireSection сверяет роль с таблицей доступа раздела
func (s *Server) requireSection(sec section) gin.HandlerFunc {
	min := sectionRoles[sec]
	return func(c *gin.Context) {
		p := principalFrom(c)
		if !p.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to access this page"})
			return
		}
		c.Next()
	}
}

func principalFrom(c *gin.Context) domain.Principal {
	v, _ := c.Get(principalKey)
	p, _ := v.(domain.Principal)
	return p
}
