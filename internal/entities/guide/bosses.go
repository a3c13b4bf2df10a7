package guide

// Bosses is the reference list offered when picking a guide's boss. Guides may
// still name a boss that is not listed.
var Bosses = []string{
	"Raksha",
	"Arch-Glacor",
	"Telos",
	"Vorago",
	"Kerapac",
	"Hardmode Kerapac",
	"Gregorovic",
	"Zuk",
	"Ambassador",
	"Seiryu",
	"Black Stone Dragon",
	"Solak",
	"General Graardor (God Wars Dungeon 1)",
	"Kree'arra (God Wars Dungeon 1)",
	"Commander Zilyana (God Wars Dungeon 1)",
	"K'ril Tsutsaroth (God Wars Dungeon 1)",
	"Corporeal Beast",
	"King Black Dragon",
	"Queen Black Dragon",
	"Giant Mole",
	"Vorkath (Elite Dungeon 3)",
	"Nex",
	"Helwyr (God Wars Dungeon 2)",
	"Vindicta & Gorvek (God Wars Dungeon 2)",
	"The Twin Furies (God Wars Dungeon 2)",
	"Araxxi/Arraxor",
	"Chaos Elemental",
	"Dagannoth Kings",
	"Kalphite Queen",
	"Phoenix",
	"Har-Aken (Fight Kiln)",
	"Tzhaar-Ket-Keh (Fight Caves)",
	"Croesus",
	"Abyssal Sire",
	"Alchemical Hydra",
	"Cerberus",
	"Chambers of Xeric",
	"Theatre of Blood",
	"Nex: Angel of Death",
	"Zamorak, Lord of Chaos (God Wars Dungeon 3)",
	"Kril Tsutsaroth (God Wars Dungeon 3)",
	"K'ril Tsutsaroth (God Wars Dungeon 3)",
	"Zamorak (God Wars Dungeon 3)",
	"Daemonheim (Dungeoneering)",
	"Rise of the Six",
	"Legiones",
	"Araxxor",
	"Kalphite King",
	"Beastmaster Durzag",
	"Yakamaru",
	"The Magister",
	"Rax",
	"Vindicta",
	"Helwyr",
	"AOD",
	"ED1",
	"ED2",
	"ED3",
	"The Witness",
	"Dagannoth Supremor",
	"Dagannoth Rex",
	"Dagannoth Prime",
}

// KnownBoss reports whether name is on the reference list
func KnownBoss(name string) bool {
	for _, b := range Bosses {
		if b == name {
			return true
		}
	}
	return false
}
