package dialog

// Texts are the caller-facing phrases. Only this package turns outcomes into words
type Texts struct {
	Greeting   string
	MenuItem   string // formatted with skill name then digit
	Invalid    string
	Trouble    string
	NotFound   string
	Blocked    string
	TooMany    string
	NavUsage   string
	NowPlaying string
}

// DefaultTexts are Hebrew, matching the he-IL voice capture
func DefaultTexts() Texts {
	return Texts{
		Greeting:   "שלום",
		MenuItem:   "עבור %s הקישו %s",
		Invalid:    "בחירה לא תקינה",
		Trouble:    "תקלה במערכת, נסו שוב",
		NotFound:   "לא נמצאו תוצאות",
		Blocked:    "הבקשה נחסמה",
		TooMany:    "יותר מדי בקשות, נסו שוב בעוד דקה",
		NavUsage:   "אמרו מוצא ויעד, למשל תל אביב עד חיפה",
		NowPlaying: "מתנגן",
	}
}

func (t Texts) withDefaults() Texts {
	d := DefaultTexts()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&t.Greeting, d.Greeting)
	fill(&t.MenuItem, d.MenuItem)
	fill(&t.Invalid, d.Invalid)
	fill(&t.Trouble, d.Trouble)
	fill(&t.NotFound, d.NotFound)
	fill(&t.Blocked, d.Blocked)
	fill(&t.TooMany, d.TooMany)
	fill(&t.NavUsage, d.NavUsage)
	fill(&t.NowPlaying, d.NowPlaying)
	return t
}
