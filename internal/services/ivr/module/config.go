package module

import (
	"context"

	"navline/internal/adapters/providers/gemini"
	"navline/internal/adapters/providers/googlemaps"
	"navline/internal/adapters/providers/osm"
	"navline/internal/adapters/providers/youtube"
	"navline/internal/adapters/providers/ytdlp"
	"navline/internal/core/dialog"
	"navline/internal/core/provider"
	"navline/internal/modkit"
	"navline/internal/platform/logger"
)

// Options carries what the module needs beyond modkit.Deps
type Options struct {
	Skills    []dialog.Skill
	Texts     dialog.Texts
	Sentinels dialog.Sentinels
}

// FromConfig builds the skill set from IVR_* and PROVIDER_* settings on deps.Cfg.
// Navigation and places always have the keyless OpenStreetMap fallback; media
// and chat stay on the menu without credentials and report trouble when used
func FromConfig(ctx context.Context, deps modkit.Deps) (Options, error) {
	ivr := deps.Cfg.Prefix("IVR_")
	prov := deps.Cfg.Prefix("PROVIDER_")
	log := logger.Named("ivr")

	texts := dialog.DefaultTexts()
	texts.Greeting = ivr.MayString("GREETING", texts.Greeting)
	placesLimit := ivr.MayInt("PLACES_LIMIT", 3)

	nom := osm.NewNominatim(prov.MayString("NOMINATIM_URL", osm.DefaultNominatimURL), placesLimit)
	osmRoute := osm.NewRouter(nom, osm.NewOSRM(prov.MayString("OSRM_URL", osm.DefaultOSRMURL)))

	var (
		nav    []dialog.Provider[provider.Router]
		places []dialog.Provider[provider.PlaceSearcher]
	)
	if key := prov.MayString("GOOGLE_API_KEY", ""); key != "" {
		g := googlemaps.New(googlemaps.Options{
			APIKey:  key,
			BaseURL: prov.MayString("GOOGLE_MAPS_URL", googlemaps.DefaultBaseURL),
		})
		nav = append(nav, dialog.Named[provider.Router]("google-directions", g))
		places = append(places, dialog.Named[provider.PlaceSearcher]("google-places", g))
	} else {
		log.Warn().Msg("PROVIDER_GOOGLE_API_KEY unset, navigation and places run on OpenStreetMap only")
	}
	nav = append(nav, dialog.Named[provider.Router]("osrm", osmRoute))
	places = append(places, dialog.Named[provider.PlaceSearcher]("nominatim", nom))

	skills := []dialog.Skill{
		dialog.NewNavigation(deps.Gateway, dialog.NavigationOptions{
			Digit:         ivr.MayString("DIGIT_NAVIGATION", "1"),
			DefaultOrigin: ivr.MayString("DEFAULT_ORIGIN", ""),
			Texts:         texts,
		}, nav...),
		dialog.NewPlaceLookup(deps.Gateway, ivr.MayString("DIGIT_PLACES", "2"), placesLimit, places...),
	}

	// without a key the youtube link fails as a config fault and the skill
	// answers with the trouble text instead of disappearing from the menu
	ytKey := prov.MayString("YOUTUBE_API_KEY", "")
	if ytKey == "" {
		log.Warn().Msg("PROVIDER_YOUTUBE_API_KEY unset, media search will report trouble")
	}
	yt := youtube.New(youtube.Options{
		APIKey:  ytKey,
		BaseURL: prov.MayString("YOUTUBE_URL", youtube.DefaultBaseURL),
	})
	dl := ytdlp.New(ytdlp.Options{Binary: prov.MayString("YTDLP_BIN", "yt-dlp"), Pool: deps.Pool})
	skills = append(skills, dialog.NewMediaSearch(deps.Gateway, ivr.MayString("DIGIT_MEDIA", "3"),
		[]dialog.Provider[provider.MediaSearcher]{dialog.Named[provider.MediaSearcher]("youtube", yt)},
		[]dialog.Provider[provider.AudioResolver]{dialog.Named[provider.AudioResolver]("yt-dlp", dl)},
	))

	geminiKey := prov.MayString("GEMINI_API_KEY", "")
	if geminiKey == "" {
		log.Warn().Msg("PROVIDER_GEMINI_API_KEY unset, conversational ai will report trouble")
	}
	var links []dialog.Provider[provider.Completer]
	for _, model := range []string{
		prov.MayString("GEMINI_MODEL", "gemini-2.5-flash"),
		prov.MayString("GEMINI_FALLBACK_MODEL", "gemini-2.0-flash"),
	} {
		var c *gemini.Completer
		if geminiKey == "" {
			c = gemini.Unconfigured(model)
		} else {
			var err error
			if c, err = gemini.New(ctx, gemini.Options{APIKey: geminiKey, Model: model}); err != nil {
				return Options{}, err
			}
		}
		links = append(links, dialog.Named[provider.Completer]("gemini:"+model, c))
	}
	skills = append(skills, dialog.NewConversationalAI(deps.Gateway, ivr.MayString("DIGIT_CHAT", "4"), links...))

	return Options{
		Skills:    skills,
		Texts:     texts,
		Sentinels: dialog.NewSentinels(ivr.MayCSV("SENTINELS", []string{"None", "null", "undefined"})...),
	}, nil
}
