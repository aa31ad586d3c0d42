package middleware

import "net/http"

// AllowedOrigin est défini au démarrage depuis la config. "*" par défaut:
// le jeu est servi depuis un domaine tiers et l'API est publique.
var AllowedOrigin = "*"

// CORSMiddleware pose les en-têtes cross-origin sur toutes les réponses et
// répond aux pre-flight OPTIONS immédiatement, avant tout routage et toute
// logique métier (réponse fixe, corps vide, quel que soit le chemin).
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", AllowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, X-Client-Info, Apikey, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
