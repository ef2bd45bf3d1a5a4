package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS configura CORS para a aplicação. Origens separadas por vírgula;
// "*" libera qualquer origem, mas sem credenciais.
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
		case o == "*":
			config.AllowAllOrigins = true
			config.AllowCredentials = false
			config.AllowOrigins = nil
		case !config.AllowAllOrigins:
			config.AllowOrigins = append(config.AllowOrigins, o)
		}
	}

	if !config.AllowAllOrigins && len(config.AllowOrigins) == 0 {
		config.AllowOrigins = []string{"http://localhost:3000"}
	}

	return cors.New(config)
}
