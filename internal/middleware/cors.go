package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/wb-go/wbf/ginext"
)

// CORS lets browser clients on origins call the API with bearer tokens.
// No origins means any origin.
func CORS(origins []string) ginext.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return ginext.HandlerFunc(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
	}))
}
