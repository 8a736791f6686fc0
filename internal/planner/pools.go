// internal/planner/pools.go
package planner

import "betonfit/coach-app/internal/domain"

// Role classifies a pool item; it drives both selection order and the
// sets/reps prescription.
type Role int

const (
	RoleMain   Role = iota // heavy compound
	RoleAssist             // secondary compound
	RoleIso                // isolation
	RoleCore               // core / finisher
)

// PoolItem is one candidate movement inside a static focus pool. Pools are
// read-only reference data, shared by every planning call.
type PoolItem struct {
	Name     string
	Equip    string                     // display label for the main variant
	Requires []string                   // equipment keys, all required; "machine" needs a full gym
	Fallback string                     // bodyweight substitute, "" = none
	Role     Role
	Contra   func(domain.Injuries) bool // nil = no contraindication
}

func backInjury(i domain.Injuries) bool     { return i.Back }
func shoulderInjury(i domain.Injuries) bool { return i.Shoulder }
func kneeInjury(i domain.Injuries) bool     { return i.Knee }
func wristInjury(i domain.Injuries) bool    { return i.Wrist }
func jumpInjury(i domain.Injuries) bool     { return i.Knee || i.Ankle }

// hasEquip reports whether one equipment key is satisfied by the profile. A
// full gym satisfies everything; "machine" is only satisfied by a full gym.
func hasEquip(p domain.Profile, key string) bool {
	if p.EquipLevel == domain.EquipFull {
		return true
	}
	switch key {
	case "machine":
		return false
	case "bands":
		return p.Equipment.Bands
	case "kb":
		return p.Equipment.Kettlebell
	case "trx":
		return p.Equipment.TRX
	case "bench":
		return p.Equipment.Bench
	case "bar":
		return p.Equipment.Bar
	case "db":
		return p.Equipment.Dumbbells
	case "bike":
		return p.Equipment.Bike
	case "rower":
		return p.Equipment.Rower
	case "treadmill":
		return p.Equipment.Treadmill
	}
	return false
}

// hasAllEquip reports whether every required key of an item is satisfied.
func hasAllEquip(p domain.Profile, item PoolItem) bool {
	for _, key := range item.Requires {
		if !hasEquip(p, key) {
			return false
		}
	}
	return true
}

// corePool holds the closing-block candidates appended when a session ends
// under budget. The first item never requires equipment.
var corePool = []PoolItem{
	{Name: "Planche", Equip: "poids du corps", Role: RoleCore},
	{Name: "Gainage latéral", Equip: "poids du corps", Role: RoleCore},
	{Name: "Dead bug", Equip: "poids du corps", Role: RoleCore},
	{Name: "Pallof press", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Planche bras tendus", Role: RoleCore},
	{Name: "Roulette abdominale", Equip: "roue", Requires: []string{"machine"}, Fallback: "Mountain climbers lents", Role: RoleCore},
}

// pools maps each focus tag to its candidate movements. Every pool keeps at
// least one item with no equipment requirement and no contraindication so a
// session can never come back empty.
var pools = map[FocusTag][]PoolItem{
	FocusBasQuads: {
		{Name: "Back squat barre", Equip: "barre", Requires: []string{"bar"}, Fallback: "Squat gobelet", Role: RoleMain, Contra: backInjury},
		{Name: "Presse à cuisses", Equip: "machine", Requires: []string{"machine"}, Fallback: "Squat bulgare", Role: RoleMain},
		{Name: "Front squat", Equip: "barre", Requires: []string{"bar"}, Fallback: "Squat gobelet", Role: RoleMain, Contra: wristInjury},
		{Name: "Squat gobelet", Equip: "haltère", Requires: []string{"db"}, Fallback: "Squat au poids du corps", Role: RoleAssist},
		{Name: "Fentes marchées", Equip: "haltères", Requires: []string{"db"}, Fallback: "Fentes sur place", Role: RoleAssist, Contra: kneeInjury},
		{Name: "Squat bulgare", Equip: "poids du corps", Role: RoleAssist, Contra: kneeInjury},
		{Name: "Step-up sur banc", Equip: "banc", Requires: []string{"bench"}, Fallback: "Montées de marche", Role: RoleAssist},
		{Name: "Leg extension", Equip: "machine", Requires: []string{"machine"}, Fallback: "Squat sissy assisté", Role: RoleIso},
		{Name: "Squat sauté", Equip: "poids du corps", Role: RoleIso, Contra: jumpInjury},
		{Name: "Wall sit", Equip: "poids du corps", Role: RoleIso},
		{Name: "Mollets debout", Equip: "poids du corps", Role: RoleIso},
		{Name: "Squat au poids du corps", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusBasIschios: {
		{Name: "Soulevé de terre roumain", Equip: "barre", Requires: []string{"bar"}, Fallback: "Hip thrust au sol", Role: RoleMain, Contra: backInjury},
		{Name: "Hip thrust barre", Equip: "barre + banc", Requires: []string{"bar", "bench"}, Fallback: "Hip thrust au sol", Role: RoleMain},
		{Name: "Soulevé de terre jambes tendues haltères", Equip: "haltères", Requires: []string{"db"}, Fallback: "Good morning au poids du corps", Role: RoleMain, Contra: backInjury},
		{Name: "Leg curl allongé", Equip: "machine", Requires: []string{"machine"}, Fallback: "Leg curl glissé", Role: RoleAssist},
		{Name: "Swing kettlebell", Equip: "kettlebell", Requires: []string{"kb"}, Fallback: "Pont fessier rythmé", Role: RoleAssist, Contra: backInjury},
		{Name: "Pont fessier une jambe", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Nordic curl assisté", Equip: "poids du corps", Role: RoleAssist, Contra: kneeInjury},
		{Name: "Abduction à l'élastique", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Abduction au sol", Role: RoleIso},
		{Name: "Hyperextensions", Equip: "machine", Requires: []string{"machine"}, Fallback: "Superman au sol", Role: RoleIso, Contra: backInjury},
		{Name: "Donkey kicks", Equip: "poids du corps", Role: RoleIso},
		{Name: "Hip thrust au sol", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusHautPush: {
		{Name: "Développé couché barre", Equip: "barre + banc", Requires: []string{"bar", "bench"}, Fallback: "Pompes lestées", Role: RoleMain, Contra: shoulderInjury},
		{Name: "Développé militaire barre", Equip: "barre", Requires: []string{"bar"}, Fallback: "Pompes piquées", Role: RoleMain, Contra: shoulderInjury},
		{Name: "Développé haltères incliné", Equip: "haltères + banc", Requires: []string{"db", "bench"}, Fallback: "Pompes surélevées", Role: RoleMain},
		{Name: "Dips sur banc", Equip: "banc", Requires: []string{"bench"}, Fallback: "Pompes serrées", Role: RoleAssist, Contra: shoulderInjury},
		{Name: "Pompes", Equip: "poids du corps", Role: RoleAssist, Contra: wristInjury},
		{Name: "Développé haltères prise neutre", Equip: "haltères", Requires: []string{"db"}, Fallback: "Pompes piquées", Role: RoleAssist},
		{Name: "Élévations latérales", Equip: "haltères", Requires: []string{"db"}, Fallback: "Élévations à l'élastique", Role: RoleIso},
		{Name: "Écarté couché haltères", Equip: "haltères + banc", Requires: []string{"db", "bench"}, Fallback: "Pompes larges", Role: RoleIso},
		{Name: "Extension triceps poulie", Equip: "machine", Requires: []string{"machine"}, Fallback: "Extension triceps élastique", Role: RoleIso},
		{Name: "Pompes surélevées", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Pike push-up", Equip: "poids du corps", Role: RoleIso, Contra: shoulderInjury},
	},
	FocusHautPull: {
		{Name: "Rowing barre", Equip: "barre", Requires: []string{"bar"}, Fallback: "Rowing inversé sous table", Role: RoleMain, Contra: backInjury},
		{Name: "Tractions", Equip: "barre de traction", Requires: []string{"bar"}, Fallback: "Tractions australiennes", Role: RoleMain},
		{Name: "Tirage vertical poulie", Equip: "machine", Requires: []string{"machine"}, Fallback: "Tractions australiennes", Role: RoleMain},
		{Name: "Rowing haltère unilatéral", Equip: "haltère", Requires: []string{"db"}, Fallback: "Rowing élastique", Role: RoleAssist},
		{Name: "Rowing TRX", Equip: "TRX", Requires: []string{"trx"}, Fallback: "Rowing inversé sous table", Role: RoleAssist},
		{Name: "Tirage horizontal élastique", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Superman rowing", Role: RoleAssist},
		{Name: "Face pull élastique", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Band pull-apart imité", Role: RoleIso},
		{Name: "Curl biceps haltères", Equip: "haltères", Requires: []string{"db"}, Fallback: "Curl élastique", Role: RoleIso},
		{Name: "Shrugs haltères", Equip: "haltères", Requires: []string{"db"}, Fallback: "Élévations d'épaules lentes", Role: RoleIso},
		{Name: "Superman rowing", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusHautMix: {
		{Name: "Développé couché haltères", Equip: "haltères + banc", Requires: []string{"db", "bench"}, Fallback: "Pompes", Role: RoleMain},
		{Name: "Rowing barre", Equip: "barre", Requires: []string{"bar"}, Fallback: "Rowing inversé sous table", Role: RoleMain, Contra: backInjury},
		{Name: "Développé militaire haltères", Equip: "haltères", Requires: []string{"db"}, Fallback: "Pompes surélevées", Role: RoleMain, Contra: shoulderInjury},
		{Name: "Pompes", Equip: "poids du corps", Role: RoleAssist, Contra: wristInjury},
		{Name: "Tractions australiennes", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Rowing haltère unilatéral", Equip: "haltère", Requires: []string{"db"}, Fallback: "Rowing élastique", Role: RoleAssist},
		{Name: "Élévations latérales", Equip: "haltères", Requires: []string{"db"}, Fallback: "Élévations à l'élastique", Role: RoleIso},
		{Name: "Curl biceps élastique", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Curl isométrique serviette", Role: RoleIso},
		{Name: "Extension triceps nuque haltère", Equip: "haltère", Requires: []string{"db"}, Fallback: "Pompes serrées", Role: RoleIso},
		{Name: "Pompes surélevées", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusBasMix: {
		{Name: "Squat gobelet", Equip: "haltère", Requires: []string{"db"}, Fallback: "Squat au poids du corps", Role: RoleMain},
		{Name: "Soulevé de terre roumain", Equip: "barre", Requires: []string{"bar"}, Fallback: "Hip thrust au sol", Role: RoleMain, Contra: backInjury},
		{Name: "Fentes arrière", Equip: "poids du corps", Role: RoleAssist, Contra: kneeInjury},
		{Name: "Hip thrust au sol", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Swing kettlebell", Equip: "kettlebell", Requires: []string{"kb"}, Fallback: "Pont fessier rythmé", Role: RoleAssist, Contra: backInjury},
		{Name: "Step-up sur banc", Equip: "banc", Requires: []string{"bench"}, Fallback: "Montées de marche", Role: RoleAssist},
		{Name: "Mollets debout", Equip: "poids du corps", Role: RoleIso},
		{Name: "Abduction à l'élastique", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Abduction au sol", Role: RoleIso},
		{Name: "Wall sit", Equip: "poids du corps", Role: RoleIso},
		{Name: "Squat au poids du corps", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusFull: {
		{Name: "Squat gobelet", Equip: "haltère", Requires: []string{"db"}, Fallback: "Squat au poids du corps", Role: RoleMain},
		{Name: "Développé couché haltères", Equip: "haltères + banc", Requires: []string{"db", "bench"}, Fallback: "Pompes", Role: RoleMain},
		{Name: "Rowing haltère unilatéral", Equip: "haltère", Requires: []string{"db"}, Fallback: "Rowing inversé sous table", Role: RoleMain},
		{Name: "Soulevé de terre roumain haltères", Equip: "haltères", Requires: []string{"db"}, Fallback: "Hip thrust au sol", Role: RoleMain, Contra: backInjury},
		{Name: "Fentes marchées", Equip: "haltères", Requires: []string{"db"}, Fallback: "Fentes sur place", Role: RoleAssist, Contra: kneeInjury},
		{Name: "Pompes", Equip: "poids du corps", Role: RoleAssist, Contra: wristInjury},
		{Name: "Tirage horizontal élastique", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Superman rowing", Role: RoleAssist},
		{Name: "Swing kettlebell", Equip: "kettlebell", Requires: []string{"kb"}, Fallback: "Pont fessier rythmé", Role: RoleAssist, Contra: backInjury},
		{Name: "Élévations latérales", Equip: "haltères", Requires: []string{"db"}, Fallback: "Élévations à l'élastique", Role: RoleIso},
		{Name: "Mollets debout", Equip: "poids du corps", Role: RoleIso},
		{Name: "Squat au poids du corps", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusCoreGainage: {
		{Name: "Planche", Equip: "poids du corps", Role: RoleMain},
		{Name: "Gainage latéral", Equip: "poids du corps", Role: RoleMain},
		{Name: "Dead bug", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Pallof press", Equip: "élastique", Requires: []string{"bands"}, Fallback: "Planche bras tendus", Role: RoleAssist},
		{Name: "Relevé de jambes suspendu", Equip: "barre de traction", Requires: []string{"bar"}, Fallback: "Relevé de jambes au sol", Role: RoleAssist},
		{Name: "Mountain climbers", Equip: "poids du corps", Role: RoleIso, Contra: wristInjury},
		{Name: "Crunch à la poulie", Equip: "machine", Requires: []string{"machine"}, Fallback: "Crunch lent", Role: RoleIso},
		{Name: "Bird dog", Equip: "poids du corps", Role: RoleIso},
		{Name: "Hollow hold", Equip: "poids du corps", Role: RoleCore},
	},
	FocusCardio: {
		{Name: "Intervalles vélo 30/30", Equip: "vélo", Requires: []string{"bike"}, Fallback: "Burpees en intervalles", Role: RoleMain, Contra: jumpInjury},
		{Name: "Rameur fractionné 500 m", Equip: "rameur", Requires: []string{"rower"}, Fallback: "Jumping jacks en intervalles", Role: RoleMain, Contra: backInjury},
		{Name: "Course fractionnée sur tapis", Equip: "tapis de course", Requires: []string{"treadmill"}, Fallback: "Montées de genoux sur place", Role: RoleMain, Contra: jumpInjury},
		{Name: "Burpees en intervalles", Equip: "poids du corps", Role: RoleAssist, Contra: jumpInjury},
		{Name: "Montées de genoux sur place", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Swing kettlebell léger", Equip: "kettlebell", Requires: []string{"kb"}, Fallback: "Squat rapide au poids du corps", Role: RoleAssist, Contra: backInjury},
		{Name: "Corde à sauter", Equip: "corde", Requires: []string{"bands"}, Fallback: "Sauts imités sans corde", Role: RoleIso, Contra: jumpInjury},
		{Name: "Marche rapide inclinée", Equip: "tapis de course", Requires: []string{"treadmill"}, Fallback: "Marche active escaliers", Role: RoleIso},
		{Name: "Squat rapide au poids du corps", Equip: "poids du corps", Role: RoleAssist},
	},
	FocusMobilite: {
		{Name: "Flow hanches 90/90", Equip: "poids du corps", Role: RoleMain},
		{Name: "Chat-vache", Equip: "poids du corps", Role: RoleMain},
		{Name: "Fente basse avec rotation", Equip: "poids du corps", Role: RoleAssist, Contra: kneeInjury},
		{Name: "Ouverture thoracique au sol", Equip: "poids du corps", Role: RoleAssist},
		{Name: "Étirement ischios sangle", Equip: "sangle", Requires: []string{"trx"}, Fallback: "Étirement ischios serviette", Role: RoleIso},
		{Name: "Mobilité épaules bâton", Equip: "bâton", Requires: []string{"bar"}, Fallback: "Cercles de bras lents", Role: RoleIso, Contra: shoulderInjury},
		{Name: "Chien tête en bas", Equip: "poids du corps", Role: RoleIso},
		{Name: "Respiration diaphragmatique", Equip: "poids du corps", Role: RoleCore},
	},
}

// PoolFor returns the candidate pool for a focus tag. Unknown tags fall back
// to the full-body pool so the selector always has material to work with.
func PoolFor(tag FocusTag) []PoolItem {
	if pool, ok := pools[tag]; ok {
		return pool
	}
	return pools[FocusFull]
}

// contraByName indexes injury predicates by exercise name. A fallback
// substitution is re-checked against this index so a movement one pool marks
// as contraindicated is never handed out under another item's fallback.
var contraByName = map[string]func(domain.Injuries) bool{
	// fallback-only variants that never appear as pool items
	"Pompes piquées": shoulderInjury,
}

func init() {
	for _, pool := range pools {
		for _, item := range pool {
			if item.Contra != nil {
				contraByName[item.Name] = item.Contra
			}
		}
	}
	for _, item := range corePool {
		if item.Contra != nil {
			contraByName[item.Name] = item.Contra
		}
	}
}

func fallbackContraindicated(name string, inj domain.Injuries) bool {
	contra, ok := contraByName[name]
	return ok && contra(inj)
}
