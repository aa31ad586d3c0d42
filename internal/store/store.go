package store

import (
	"context"
	"errors"
	"time"

	model "github.com/hakuramasam/arcade-gmmc/internal/models"
)

// ErrNotFound est renvoyé quand un wallet n'a aucune entrée au classement.
var ErrNotFound = errors.New("not found")

// LeaderboardStore est l'interface de persistance du classement. Deux
// opérations écrivent le pipeline de soumission (CountSince, Insert), le
// reste sert les lectures. Chaque méthode est un aller-retour unique vers
// le store, borné par le contexte.
type LeaderboardStore interface {
	// CountSince compte les soumissions d'un wallet (déjà en minuscules)
	// depuis l'instant donné. Sert au rate limiting en fenêtre glissante.
	CountSince(ctx context.Context, walletAddress string, since time.Time) (int, error)

	// Insert crée une nouvelle ligne (jamais d'upsert: chaque soumission
	// acceptée est une entrée distincte) et retourne la ligne créée avec
	// id et created_at générés côté serveur.
	Insert(ctx context.Context, sub model.ScoreSubmission) (*model.LeaderboardEntry, error)

	// Top retourne la meilleure entrée de chaque wallet, triées par score
	// décroissant (premier arrivé gagne à score égal).
	Top(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)

	// WalletRank retourne le rang d'un wallet sur son meilleur score.
	// ErrNotFound si le wallet n'a aucune entrée.
	WalletRank(ctx context.Context, walletAddress string) (*model.WalletRank, error)

	// WalletScores retourne les soumissions d'un wallet, récentes d'abord.
	WalletScores(ctx context.Context, walletAddress string, limit int) ([]model.LeaderboardEntry, error)
}

// Leaderboard est le store partagé par les handlers et le rate limiter,
// branché sur Postgres au démarrage. Les tests le remplacent par un fake.
var Leaderboard LeaderboardStore = &Postgres{}
