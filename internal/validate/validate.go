package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"github.com/hakuramasam/arcade-gmmc/internal/game"
	model "github.com/hakuramasam/arcade-gmmc/internal/models"
)

// Reason identifie la cause exacte d'un rejet. L'ordre des contrôles fait
// partie du contrat: première erreur rencontrée, premier rejet rendu.
type Reason string

const (
	ReasonMalformedPayload Reason = "malformed_payload"
	ReasonInvalidAddress   Reason = "invalid_address"
	ReasonInvalidScoreType Reason = "invalid_score_type"
	ReasonScoreOutOfRange  Reason = "score_out_of_range"
	ReasonInvalidTxHash    Reason = "invalid_tx_hash"
)

// Rejection porte la raison typée et le message renvoyé au client.
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string { return r.Message }

var (
	// Adresse Ethereum: 0x + 40 caractères hexadécimaux
	walletRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	// Hash de transaction: 0x + 64 caractères hexadécimaux
	txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
)

// Submission valide le payload brut champ par champ et retourne une
// soumission typée. Le payload vient du client, donc de l'adversaire:
// aucun champ n'est supposé présent ni bien typé. Validation pure,
// aucun effet de bord; la mise en minuscules de l'adresse et
// l'assainissement du nom restent à la charge du handler.
func Submission(payload map[string]interface{}) (*model.ScoreSubmission, *Rejection) {
	wallet, ok := payload["wallet_address"].(string)
	if !ok || wallet == "" {
		return nil, &Rejection{ReasonInvalidAddress, "Valid wallet address is required"}
	}
	if !walletRegex.MatchString(wallet) {
		return nil, &Rejection{ReasonInvalidAddress, "Invalid wallet address format"}
	}

	score, ok := integerField(payload["score"])
	if !ok {
		return nil, &Rejection{ReasonInvalidScoreType, "Score must be an integer"}
	}
	if score < game.MinValidScore || score > game.MaxValidScore {
		return nil, &Rejection{ReasonScoreOutOfRange,
			fmt.Sprintf("Score must be between %d and %d", game.MinValidScore, game.MaxValidScore)}
	}

	var txHash *string
	if raw, present := payload["tx_hash"]; present && raw != nil {
		s, ok := raw.(string)
		if !ok || (s != "" && !txHashRegex.MatchString(s)) {
			return nil, &Rejection{ReasonInvalidTxHash, "Invalid transaction hash format"}
		}
		if s != "" {
			txHash = &s
		}
	}

	var playerName *string
	if s, ok := payload["player_name"].(string); ok && s != "" {
		playerName = &s
	}

	return &model.ScoreSubmission{
		WalletAddress: wallet,
		Score:         score,
		TxHash:        txHash,
		PlayerName:    playerName,
	}, nil
}

// integerField accepte un nombre JSON à valeur entière (42 ou 42.0) et
// rejette tout le reste: fractionnaire, chaîne, booléen, absent.
func integerField(raw interface{}) (int, bool) {
	num, ok := raw.(json.Number)
	if !ok {
		return 0, false
	}
	if n, err := num.Int64(); err == nil {
		return int(n), true
	}
	f, err := num.Float64()
	if err != nil || math.Trunc(f) != f || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
