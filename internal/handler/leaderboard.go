package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/hakuramasam/arcade-gmmc/internal/store"
	"github.com/hakuramasam/arcade-gmmc/internal/utils"
)

var walletPathRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// GetLeaderboard récupère le classement général (meilleur score par wallet)
func GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := limitParam(r, 50)

	entries, err := store.Leaderboard.Top(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query leaderboard", err)
		return
	}

	utils.Success(w, entries)
}

// GetTopPerformers récupère le podium (top 3)
func GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	entries, err := store.Leaderboard.Top(r.Context(), 3)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query top performers", err)
		return
	}

	utils.Success(w, entries)
}

// GetWalletRank récupère le rang d'un wallet dans le classement
func GetWalletRank(w http.ResponseWriter, r *http.Request) {
	address, ok := walletParam(w, r)
	if !ok {
		return
	}

	rank, err := store.Leaderboard.WalletRank(r.Context(), address)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.ErrorSimple(w, http.StatusNotFound, "Wallet has no leaderboard entries")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not fetch wallet rank", err)
		return
	}

	// Calculer le percentile
	if rank.TotalWallets > 0 {
		rank.Percentile = float64(rank.Rank) / float64(rank.TotalWallets) * 100
	} else {
		rank.Percentile = 100
	}

	// Badges spéciaux pour le podium
	switch rank.Rank {
	case 1:
		rank.Badges = []string{"👑", "🔥", "💎"}
	case 2:
		rank.Badges = []string{"🔥", "💪"}
	case 3:
		rank.Badges = []string{"💎", "⚡"}
	}

	utils.Success(w, rank)
}

// GetWalletScores récupère l'historique des soumissions d'un wallet
func GetWalletScores(w http.ResponseWriter, r *http.Request) {
	address, ok := walletParam(w, r)
	if !ok {
		return
	}

	limit := limitParam(r, 50)

	entries, err := store.Leaderboard.WalletScores(r.Context(), address, limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query wallet scores", err)
		return
	}

	utils.Success(w, entries)
}

// walletParam valide l'adresse de l'URL et la normalise en minuscules.
func walletParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := mux.Vars(r)["address"]
	if !walletPathRegex.MatchString(address) {
		utils.ErrorSimple(w, http.StatusBadRequest, "Invalid wallet address format")
		return "", false
	}
	return strings.ToLower(address), true
}

// limitParam lit ?limit= avec une valeur par défaut, plafonné à 100.
func limitParam(r *http.Request, fallback int) int {
	limit := fallback
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}
