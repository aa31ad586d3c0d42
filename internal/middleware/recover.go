package middleware

import (
	"net/http"

	"github.com/hakuramasam/arcade-gmmc/internal/utils"
)

// RecoverMiddleware est la frontière extérieure du handler: toute panique
// est loggée puis traduite en 500 générique. Aucun détail interne ne doit
// atteindre le client.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				utils.LogError("panic recovered on %s %s: %v", r.Method, r.URL.Path, rec)
				utils.ErrorSimple(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
