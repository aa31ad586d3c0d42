package handler

import (
	"net/http"

	"github.com/hakuramasam/arcade-gmmc/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "GMMC Arcade API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"scores": []map[string]string{
				{"method": "POST", "path": "/scores", "description": "Soumettre un score au classement"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement général (params: limit)"},
				{"method": "GET", "path": "/leaderboard/top", "description": "Podium (top 3)"},
				{"method": "GET", "path": "/leaderboard/wallets/{address}", "description": "Rang d'un wallet"},
				{"method": "GET", "path": "/leaderboard/wallets/{address}/scores", "description": "Historique des soumissions d'un wallet (params: limit)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour GMMC Arcade - Jeu d'arcade play-to-earn",
		},
	}

	utils.Success(w, routes)
}
