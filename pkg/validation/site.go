package validation

import (
	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

// siteAtPlayerPosition looks up the site occupancy at playerID's
// current hex, rejecting with CodeNoSite when none exists.
func siteAtPlayerPosition(state *engine.GameState, playerID string) (engine.SiteOccupancy, *Rejection) {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return engine.SiteOccupancy{}, reject("siteAtPlayerPosition", CodeNotYourTurn, "unknown player")
	}
	site, ok := state.Map.SiteAt(p.Position)
	if !ok || site.SiteDefID == "" {
		return engine.SiteOccupancy{}, reject("siteAtPlayerPosition", CodeNoSite, "no site at the player's current hex")
	}
	return site, nil
}

func atRecruitSite(state *engine.GameState, cat *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	_, rej := siteAtPlayerPosition(state, playerID)
	return rej
}

func keepOwnedByPlayer(state *engine.GameState, cat *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	site, rej := siteAtPlayerPosition(state, playerID)
	if rej != nil {
		return rej
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil {
		return nil // caught as Internal by the executor
	}
	if def.Kind == catalog.SiteKeep && site.OwnerPlayerID != playerID {
		return reject("keepOwnedByPlayer", CodeNotYourKeep, "this keep is not owned by the player")
	}
	return nil
}

func monasteryNotBurned(state *engine.GameState, cat *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	site, rej := siteAtPlayerPosition(state, playerID)
	if rej != nil {
		return rej
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil {
		return nil
	}
	if def.Kind == catalog.SiteMonastery && site.Burned {
		return reject("monasteryNotBurned", CodeMonasteryBurned, "this monastery has been burned")
	}
	return nil
}

func villageNotYetPlundered(state *engine.GameState, cat *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	site, rej := siteAtPlayerPosition(state, playerID)
	if rej != nil {
		return rej
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil {
		return nil
	}
	if def.Kind == catalog.SiteVillage && site.Plundered {
		return reject("villageNotYetPlundered", CodeVillagePlundered, "this village has already been plundered this round")
	}
	return nil
}

func siteHasHealing(state *engine.GameState, cat *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	site, rej := siteAtPlayerPosition(state, playerID)
	if rej != nil {
		return rej
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil {
		return nil
	}
	if !def.HasHealing {
		return reject("siteHasHealing", CodeNoHealingHere, "this site offers no healing")
	}
	return nil
}

func unitClassMatchesSite(state *engine.GameState, cat *catalog.Catalog, playerID string, a engine.Action) *Rejection {
	site, rej := siteAtPlayerPosition(state, playerID)
	if rej != nil {
		return rej
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil {
		return nil
	}
	unitDef, err := cat.Unit(a.Str("unit_id"))
	if err != nil {
		return nil
	}
	for _, cls := range unitDef.RecruitSiteClasses {
		for _, siteCls := range def.RecruitClasses {
			if cls == siteCls {
				return nil
			}
		}
	}
	return reject("unitClassMatchesSite", CodeRecruitClassMismatch, "unit's recruit class does not match this site")
}

// siteIsVillage rejects when the player's hex holds anything but a
// village; plundering is a village-only raid.
func siteIsVillage(state *engine.GameState, cat *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	site, rej := siteAtPlayerPosition(state, playerID)
	if rej != nil {
		return rej
	}
	def, err := cat.Site(site.SiteDefID)
	if err != nil {
		return nil
	}
	if def.Kind != catalog.SiteVillage {
		return reject("siteIsVillage", CodeNotAVillage, "there is no village to plunder here")
	}
	return nil
}

// turnNotYetStarted gates plundering to the opening of a turn: before
// any move, action, or rest declaration.
func turnNotYetStarted(state *engine.GameState, _ *catalog.Catalog, playerID string, _ engine.Action) *Rejection {
	p, _ := state.PlayerByID(playerID)
	if p == nil {
		return reject("turnNotYetStarted", CodeNotYourTurn, "unknown player")
	}
	if p.Flags.HasMoved || p.Flags.HasActed || p.Flags.IsResting || p.Flags.HasRested {
		return reject("turnNotYetStarted", CodeTurnAlreadyStarted, "a village may only be plundered at the start of the turn")
	}
	return nil
}

var plunderVillagePredicates = append(append([]Predicate{}, commonTurnPredicates...),
	siteIsVillage,
	villageNotYetPlundered,
	turnNotYetStarted,
)

var enterSitePredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	hasNotActedThisTurn,
	atRecruitSite,
	monasteryNotBurned,
)

var interactPredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	hasNotActedThisTurn,
	atRecruitSite,
	monasteryNotBurned,
	villageNotYetPlundered,
	siteHasHealing,
)

var recruitUnitPredicates = append(append([]Predicate{}, commonTurnPredicates...),
	notAlreadyRestingThisTurn,
	hasNotActedThisTurn,
	atRecruitSite,
	monasteryNotBurned,
	unitClassMatchesSite,
)
