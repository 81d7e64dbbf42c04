package data

import "math/rand"

// DriverNames is the pool of nicknames assigned to recorded runs.
var DriverNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard",
	"Thomas", "Charles", "Daniel", "Matthew", "Anthony", "Mark", "Paul",
	"Steven", "Andrew", "George", "Joshua", "Kevin", "Brian", "Eric",
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara",
	"Jessica", "Sarah", "Karen", "Nancy", "Lisa", "Sandra", "Emily",
	"Michelle", "Amanda", "Stephanie", "Rebecca", "Laura", "Nicole",
	"Emma", "Samantha", "Rachel", "Anna", "Maria",
}

// DriverName picks a nickname deterministically from a seed, so the same
// world always records under the same name.
func DriverName(seed int64) string {
	r := rand.New(rand.NewSource(seed))
	return DriverNames[r.Intn(len(DriverNames))]
}
