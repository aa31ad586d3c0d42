package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hakuramasam/arcade-gmmc/internal/ratelimit"
	"github.com/hakuramasam/arcade-gmmc/internal/sanitize"
	"github.com/hakuramasam/arcade-gmmc/internal/store"
	"github.com/hakuramasam/arcade-gmmc/internal/utils"
	"github.com/hakuramasam/arcade-gmmc/internal/validate"
)

// SubmitScore enregistre un score au classement. Pipeline dans cet ordre,
// chaque étape peut court-circuiter: décodage, validation, normalisation
// de l'adresse, rate limit, assainissement du pseudo, insertion. Une seule
// écriture par soumission acceptée, zéro écriture sur tout chemin de rejet.
func SubmitScore(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodeJSONMap(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	utils.LogDebug("Score submission attempt: wallet=%v, score=%v, tx_hash=%v",
		payload["wallet_address"], payload["score"], payload["tx_hash"])

	sub, rejection := validate.Submission(payload)
	if rejection != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, rejection.Message)
		return
	}

	// L'adresse stockée est toujours en minuscules: le comptage du rate
	// limit devient insensible à la casse par construction.
	sub.WalletAddress = strings.ToLower(sub.WalletAddress)

	if err := ratelimit.Check(r.Context(), sub.WalletAddress, time.Now()); err != nil {
		if errors.Is(err, ratelimit.ErrLimitExceeded) {
			utils.ErrorSimple(w, http.StatusTooManyRequests,
				fmt.Sprintf("Rate limit exceeded. Maximum %d submissions per hour.", ratelimit.MaxPerWindow))
			return
		}
		utils.LogError("rate limit check failed: wallet=%s score=%d tx_hash=%s",
			sub.WalletAddress, sub.Score, logString(sub.TxHash))
		utils.Error(w, http.StatusInternalServerError, "Failed to check rate limit", err)
		return
	}

	sub.PlayerName = sanitize.PlayerName(sub.PlayerName)

	// Le paiement on-chain lié à tx_hash est irréversible: un échec ici
	// doit être loggé avec tout le contexte, jamais avalé en silence.
	entry, err := store.Leaderboard.Insert(r.Context(), *sub)
	if err != nil {
		utils.LogError("insert failed: wallet=%s score=%d tx_hash=%s",
			sub.WalletAddress, sub.Score, logString(sub.TxHash))
		utils.Error(w, http.StatusInternalServerError, "Failed to save score to leaderboard", err)
		return
	}

	utils.LogInfo("Score submitted: id=%s, wallet=%s, score=%d", entry.ID, entry.WalletAddress, entry.Score)
	utils.Success(w, entry)
}

// logString imprime la valeur du champ optionnel, pas l'adresse du pointeur.
func logString(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
