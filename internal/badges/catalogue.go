package badges

const (
	imageDir      = "assets/images/"
	LockedImage   = imageDir + "locked.png"
	FallbackImage = imageDir + "favicon.png"
)

type SectionID string

const (
	SectionBoss      SectionID = "boss"
	SectionStreak    SectionID = "streak"
	SectionChallenge SectionID = "challenge"
)

// Sections in display order.
var Sections = []SectionID{SectionBoss, SectionStreak, SectionChallenge}

var placeholders = map[SectionID]string{
	SectionBoss:      "This Boss is Locked",
	SectionStreak:    "No streak badges yet",
	SectionChallenge: "No challenge / milestone badges yet",
}

type Entry struct {
	Code    string
	Section SectionID
	Image   string
	Label   string
}

var catalogue = map[string]Entry{
	"BOSS_SLAYER": {Section: SectionBoss, Image: "GrogSlayer.png", Label: "Grog Slayer"},
	"BOSS_PYRO":   {Section: SectionBoss, Image: "PyroConqueror.png", Label: "Pyro Conqueror"},
	"BOSS_NOVA":   {Section: SectionBoss, Image: "NovaTimer.png", Label: "Nova Tamer"},
	"BOSS_GRUNGA": {Section: SectionBoss, Image: "GrungaPrime.png", Label: "Grunga Prime"},

	"STREAK_3":  {Section: SectionStreak, Image: "3week.png", Label: "3-Week Crusher"},
	"STREAK_5":  {Section: SectionStreak, Image: "5week.png", Label: "5-Week Sentinel"},
	"STREAK_7":  {Section: SectionStreak, Image: "7week.png", Label: "7-Week Dedication"},
	"STREAK_10": {Section: SectionStreak, Image: "10week.png", Label: "10-Week Master"},

	"FIRST_WORKOUT": {Section: SectionChallenge, Image: "1challenge.png", Label: "First Workout Logged"},
	"CHALLENGE_3":   {Section: SectionChallenge, Image: "3challenge.png", Label: "Challenge Contender"},
	"CHALLENGE_5":   {Section: SectionChallenge, Image: "5challenge.png", Label: "Challenge Rookie"},
	"CHALLENGE_10":  {Section: SectionChallenge, Image: "10challenge.png", Label: "Challenge Veteran"},
}

// Lookup returns the catalogue entry of a badge code, image path included.
func Lookup(code string) (Entry, bool) {
	e, ok := catalogue[code]
	if !ok {
		return Entry{}, false
	}
	e.Code = code
	e.Image = imageDir + e.Image
	return e, true
}

// ImageFor returns the image of code, or the fallback for unknown codes.
func ImageFor(code string) string {
	if e, ok := Lookup(code); ok {
		return e.Image
	}
	return FallbackImage
}

func Placeholder(section SectionID) string {
	return placeholders[section]
}
