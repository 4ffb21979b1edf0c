package engine

// TimeOfDay is day or night, toggled at round transition.
type TimeOfDay string

const (
	Day   TimeOfDay = "day"
	Night TimeOfDay = "night"
)

// RoundPhase orders a round's turn structure.
type RoundPhase string

const (
	PhaseTacticsSelection      RoundPhase = "tactics-selection"
	PhasePlay                  RoundPhase = "play"
	PhaseEndOfRoundTransition  RoundPhase = "end-of-round-transition"
)

// OfferKind names one of the shared unit/spell/advanced-action/tactic
// offers: a mapping of offer kind to an ordered sequence of card
// identifiers.
type OfferKind string

const (
	OfferUnit            OfferKind = "unit"
	OfferSpell           OfferKind = "spell"
	OfferAdvancedAction  OfferKind = "advanced-action"
	OfferTactic          OfferKind = "tactic"
)

// Reservoir names one of the shuffled decks feeding an offer: unit,
// spell, advanced-action, or tactic reservoirs.
type Reservoir string

const (
	ReservoirUnits           Reservoir = "units"
	ReservoirSpells          Reservoir = "spells"
	ReservoirAdvancedActions Reservoir = "advanced-actions"
	ReservoirTactics         Reservoir = "tactics"
)

// GameState is the single immutable value the reducer transforms.
// Every field here is either a primitive, a value struct, or a
// slice/map of one, so GameState can always be structurally cloned
// without reflection, implemented here as a flat Clone() that only
// deep-copies substructures that might actually change.
type GameState struct {
	Round      int        `yaml:"round"`
	TimeOfDay  TimeOfDay  `yaml:"time_of_day"`
	RNG        RNGStream  `yaml:"rng"`

	Map GameMap `yaml:"map"`

	Players       []Player `yaml:"players"`
	CurrentTurn   int      `yaml:"current_turn"` // index into Players
	RoundPhase    RoundPhase `yaml:"round_phase"`

	Offers map[OfferKind][]string `yaml:"offers"`
	Reservoirs map[Reservoir][]string `yaml:"reservoirs"`

	// SourceDice holds the shared die-source's currently-available
	// colors, refreshed (reset to a fresh roll) at round transition.
	SourceDice []string `yaml:"source_dice,omitempty"`

	Combat *CombatState `yaml:"combat,omitempty"`

	Modifiers []Modifier `yaml:"modifiers"`

	ScenarioEnded    bool `yaml:"scenario_ended"`
	FinalTurnsActive bool `yaml:"final_turns_active"`
	// FinalTurnTaken marks, by player id, whether that player has
	// completed their one allotted final turn once final-turns began.
	FinalTurnTaken map[string]bool `yaml:"final_turn_taken,omitempty"`
	// AnnouncedEndOfRound is the player id who announced end-of-round
	// this round, if any.
	AnnouncedEndOfRound string `yaml:"announced_end_of_round,omitempty"`

	// DiscardedRuinsTokens tracks globally-consumed ruins tokens so
	// they cannot re-enter play the same game.
	DiscardedRuinsTokens []string `yaml:"discarded_ruins_tokens,omitempty"`

	// UndoStack holds reversible command records up to the most
	// recent checkpoint.
	UndoStack []UndoEntry `yaml:"undo_stack,omitempty"`

	// DevMode enables the debug-* action kinds for this game. It is a
	// state flag, not a build flag, so a host can flip it per game.
	DevMode bool `yaml:"dev_mode,omitempty"`

	Version int `yaml:"version"` // monotonically increasing ordering guarantee
}

// UndoEntry is one reversible command pushed onto the undo stack.
// Storing the pre-execution snapshot (rather than a replay record) is
// the simplest implementation that satisfies the round-trip law
// c.undo(c.execute(s).state).state == s without requiring every
// Command to implement a hand-written inverse.
type UndoEntry struct {
	CommandKind string    `yaml:"command_kind"`
	PlayerID    string    `yaml:"player_id"`
	PreState    GameState `yaml:"pre_state"`
}

// CurrentPlayer returns the player whose turn it currently is.
func (s *GameState) CurrentPlayer() *Player {
	if s.CurrentTurn < 0 || s.CurrentTurn >= len(s.Players) {
		return nil
	}
	return &s.Players[s.CurrentTurn]
}

// PlayerByID finds a player by id, returning its index or -1.
func (s *GameState) PlayerByID(id string) (*Player, int) {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i], i
		}
	}
	return nil, -1
}

// Clone returns a deep, independent copy of s. Every command executes
// against a clone so the caller's original GameState value is never
// mutated in place: state is copied structurally on every transition.
func (s GameState) Clone() GameState {
	cs := s
	cs.Map = s.Map.Clone()

	cs.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cs.Players[i] = p.Clone()
	}

	if s.Offers != nil {
		cs.Offers = make(map[OfferKind][]string, len(s.Offers))
		for k, v := range s.Offers {
			cs.Offers[k] = append([]string(nil), v...)
		}
	}
	if s.Reservoirs != nil {
		cs.Reservoirs = make(map[Reservoir][]string, len(s.Reservoirs))
		for k, v := range s.Reservoirs {
			cs.Reservoirs[k] = append([]string(nil), v...)
		}
	}

	if s.Combat != nil {
		cc := s.Combat.Clone()
		cs.Combat = &cc
	}

	cs.Modifiers = append([]Modifier(nil), s.Modifiers...)
	cs.SourceDice = append([]string(nil), s.SourceDice...)

	if s.FinalTurnTaken != nil {
		cs.FinalTurnTaken = make(map[string]bool, len(s.FinalTurnTaken))
		for k, v := range s.FinalTurnTaken {
			cs.FinalTurnTaken[k] = v
		}
	}

	cs.DiscardedRuinsTokens = append([]string(nil), s.DiscardedRuinsTokens...)

	// UndoStack entries are immutable once pushed (each PreState was
	// itself produced by Clone), so a shallow slice copy is enough.
	cs.UndoStack = append([]UndoEntry(nil), s.UndoStack...)

	return cs
}
