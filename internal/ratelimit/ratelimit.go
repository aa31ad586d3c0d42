package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/hakuramasam/arcade-gmmc/internal/store"
)

// Quota de soumissions par wallet, en fenêtre glissante: la borne de la
// fenêtre est recalculée à chaque contrôle ("maintenant moins une heure"),
// pas de bucket calendaire contournable en jouant sur les frontières.
const (
	Window       = time.Hour
	MaxPerWindow = 10
)

var (
	// ErrLimitExceeded: le wallet a épuisé son quota. Rejet du client (429).
	ErrLimitExceeded = fmt.Errorf("rate limit exceeded")
	// ErrCheckFailed: le comptage lui-même a échoué. Erreur d'infrastructure
	// (500), jamais un laissez-passer silencieux.
	ErrCheckFailed = fmt.Errorf("rate limit check failed")
)

// Check compte les soumissions du wallet (adresse déjà en minuscules) sur
// la dernière heure et rejette au-delà du quota.
//
// Le contrôle et l'insertion qui le suit sont deux opérations distinctes:
// deux requêtes quasi simultanées du même wallet peuvent toutes deux voir
// un compte sous le seuil et toutes deux insérer. Imprécision bornée et
// assumée, le limiteur est un frein, pas un plafond transactionnel.
func Check(ctx context.Context, walletAddress string, now time.Time) error {
	count, err := store.Leaderboard.CountSince(ctx, walletAddress, now.Add(-Window))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}
	if count >= MaxPerWindow {
		return ErrLimitExceeded
	}
	return nil
}
