package gen3peek

// Nature is derived from a record's personality value modulo 25. Each
// nature raises one battle stat by 10% and lowers another; five of the
// 25 raise and lower the same stat and have no effect.
type Nature uint8

const (
	NatureHardy Nature = iota
	NatureLonely
	NatureBrave
	NatureAdamant
	NatureNaughty
	NatureBold
	NatureDocile
	NatureRelaxed
	NatureImpish
	NatureLax
	NatureTimid
	NatureHasty
	NatureSerious
	NatureJolly
	NatureNaive
	NatureModest
	NatureMild
	NatureQuiet
	NatureBashful
	NatureRash
	NatureCalm
	NatureGentle
	NatureSassy
	NatureCareful
	NatureQuirky
)

var natureNames = [...]string{
	"Hardy", "Lonely", "Brave", "Adamant", "Naughty",
	"Bold", "Docile", "Relaxed", "Impish", "Lax",
	"Timid", "Hasty", "Serious", "Jolly", "Naive",
	"Modest", "Mild", "Quiet", "Bashful", "Rash",
	"Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

func (n Nature) String() string {
	if int(n) < len(natureNames) {
		return natureNames[n]
	}
	return "???"
}

// Stat indices as used by Boosted and Reduced.
const (
	StatAttack = iota
	StatDefense
	StatSpeed
	StatSpAttack
	StatSpDefense
)

// Boosted returns the index of the stat this nature raises.
func (n Nature) Boosted() int {
	return int(n) / 5
}

// Reduced returns the index of the stat this nature lowers.
func (n Nature) Reduced() int {
	return int(n) % 5
}

// Neutral reports whether the nature has no stat effect.
func (n Nature) Neutral() bool {
	return n.Boosted() == n.Reduced()
}
