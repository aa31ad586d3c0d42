package game

// Constantes mécaniques du jeu, répliquées depuis le front (GameCanvas).
// Toute modification côté client doit être reportée ici, sinon les scores
// honnêtes seront rejetés.
const (
	RoundSeconds       = 30  // durée d'une partie
	SpawnIntervalMs    = 800 // une cible toutes les 800ms
	MinTargetSize      = 30  // plus petite cible possible (px)
	MaxComboMultiplier = 5   // multiplicateur de combo plafonné
)

// Valeurs dérivées des constantes ci-dessus:
//   - maxTargets: nombre maximum de cibles affichées sur une partie (~37)
//   - maxPointsPerTarget: points de la plus petite cible, formule du front
//     floor((80-size)/10)*10+10
//   - TheoreticalMaxScore: toutes les cibles touchées, toutes au combo max
const (
	maxTargets         = RoundSeconds * 1000 / SpawnIntervalMs
	maxPointsPerTarget = (80-MinTargetSize)/10*10 + 10

	// TheoreticalMaxScore est le score maximum atteignable en jeu honnête.
	TheoreticalMaxScore = maxTargets * maxPointsPerTarget * MaxComboMultiplier
)

// Bornes de validation exposées au validateur. MaxValidScore dépasse le
// maximum théorique avec une marge pour les cas limites (dernière cible
// apparue au dernier tick, dérive du timer côté client).
const (
	MinValidScore = 0
	MaxValidScore = 15000
)
