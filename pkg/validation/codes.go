package validation

// Rejection codes. Not an exhaustive closed enum — new codes are added
// as new predicates are written — but every code a shipped predicate
// can produce is named here so callers can switch on known strings.
const (
	CodeUnknownAction          = "unknown-action"
	CodeNotYourTurn            = "not-your-turn"
	CodeWrongPhase             = "wrong-phase"
	CodeInCombat               = "in-combat"
	CodeNotInCombat            = "not-in-combat"
	CodeChoicePending          = "choice-pending"
	CodeLevelUpPending         = "level-up-pending"
	CodeMustAnnounceEndOfRound = "must-announce-end-of-round"
	CodeAlreadyAnnounced       = "already-announced"
	CodeAlreadyActed          = "already-acted"
	CodeIsResting              = "is-resting"
	CodeNoSite                 = "no-site"
	CodeSiteNotConquered       = "site-not-conquered"
	CodeNotYourKeep            = "not-your-keep"
	CodeMonasteryBurned        = "monastery-burned"
	CodeNoHealingHere          = "no-healing-here"
	CodeVillagePlundered       = "village-plundered"
	CodeRecruitClassMismatch   = "recruit-class-mismatch"
	CodeCardNotInHand          = "card-not-in-hand"
	CodeCannotPlayWound        = "cannot-play-wound"
	CodeInsufficientMana       = "insufficient-mana"
	CodeManaTimeOfDay          = "mana-time-of-day-forbidden"
	CodeNoTargetHex            = "no-target-hex"
	CodeNotAdjacent            = "not-adjacent"
	CodeTerrainImpassable      = "terrain-impassable"
	CodeNotEnoughMove          = "not-enough-move"
	CodeBlockedByRampaging     = "blocked-by-rampaging"
	CodeCityEntryForbidden     = "city-entry-forbidden"
	CodeFortifiedRequiresSiege = "fortified-requires-siege"
	CodeNoAccumulatedAttack    = "no-accumulated-attack"
	CodeTargetNotAlive         = "target-not-alive"
	CodeAssassinationForbidsUnit = "assassination-forbids-unit-target"
	CodeAbilityPhaseMismatch   = "ability-phase-mismatch"
	CodeNotInCombatForAbility  = "combat-required-for-ability"
	CodeUnitCannotReceiveDamage = "unit-cannot-receive-damage"
	CodeDeckEmpty              = "deck-empty"
	CodeNoPendingChoice        = "no-pending-choice"
	CodeNothingToUndo          = "nothing-to-undo"
	CodeNoConversionModifier   = "no-conversion-modifier"
	CodeInsufficientInfluence  = "insufficient-influence"
	CodeNoExploreEdge          = "no-explore-edge"
	CodeUnknownCard            = "unknown-card"
	CodeUnitNotFound           = "unit-not-found"
	CodeUnitNotReady           = "unit-not-ready"
	CodeAbilityNotPresent      = "ability-not-present"
	CodeSkillNotLearned        = "skill-not-learned"
	CodeSkillAlreadyUsed       = "skill-already-used"
	CodeNoPendingChoiceToResolve = "no-pending-choice-to-resolve"
	CodeInvalidChoiceOption    = "invalid-choice-option"
	CodeEnemyNotFound          = "enemy-not-found"
	CodeWrongCombatPhase       = "wrong-combat-phase"
	CodeDungeonTombForbidsUnit = "dungeon-tomb-forbids-unit"
	CodeRestRequiresCard       = "rest-requires-non-wound-card"
	CodeNotDefendCapable       = "not-defend-capable"
	CodeDefendAlreadyUsed      = "defend-already-used"
	CodeDefendNullified        = "defend-nullified"
	CodeNotCumbersomeCapable   = "not-cumbersome-capable"
	CodeNotEnoughMoveForCumbersome = "not-enough-move-for-cumbersome"
	CodeTacticNotInOffer       = "tactic-not-in-offer"
	CodeTacticTimeOfDay        = "tactic-time-of-day-mismatch"
	CodeTacticAlreadySelected  = "tactic-already-selected"
	CodeNotAVillage            = "not-a-village"
	CodeTurnAlreadyStarted     = "turn-already-started"
	CodeDebugDisabled          = "debug-disabled"
	CodeMinimumTurnNotMet      = "minimum-turn-not-met"
)
