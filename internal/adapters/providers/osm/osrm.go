package osm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"navline/internal/adapters/providers/httpx"
	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

// OSRM plans routes between coordinates
type OSRM struct {
	http *httpx.Client
}

// NewOSRM builds a client against baseURL
func NewOSRM(baseURL string) *OSRM {
	if baseURL == "" {
		baseURL = DefaultOSRMURL
	}
	return &OSRM{http: httpx.New(httpx.Options{Name: "osrm", BaseURL: baseURL, UserAgent: userAgent})}
}

type osrmResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Name     string  `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func profile(m provider.Mode) string {
	if m == provider.Walking {
		return "foot"
	}
	return "driving"
}

// Between routes from a to b with step maneuvers
func (o *OSRM) Between(ctx context.Context, a, b provider.Coord, mode provider.Mode) (provider.Route, error) {
	path := fmt.Sprintf("/route/v1/%s/%s;%s", profile(mode), lonLat(a), lonLat(b))
	var out osrmResp
	if err := o.http.GetJSON(ctx, path, url.Values{"steps": {"true"}, "overview": {"false"}}, &out); err != nil {
		return provider.Route{}, err
	}
	switch out.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return provider.Route{}, perr.NotFoundf("osrm: %s", out.Code)
	default:
		return provider.Route{}, perr.Unavailablef("osrm: %s %s", out.Code, out.Message)
	}
	if len(out.Routes) == 0 {
		return provider.Route{}, nil
	}
	rt := out.Routes[0]
	r := provider.Route{DistanceMeters: rt.Distance, DurationSeconds: rt.Duration}
	for _, l := range rt.Legs {
		for _, s := range l.Steps {
			r.Steps = append(r.Steps, provider.Step{
				DistanceMeters: s.Distance,
				Instruction:    Instruction(s.Maneuver.Type, s.Maneuver.Modifier, s.Name),
			})
		}
	}
	return r, nil
}

func lonLat(c provider.Coord) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}

var modifiers = map[string]string{
	"left":         "שמאלה",
	"right":        "ימינה",
	"slight left":  "קלות שמאלה",
	"slight right": "קלות ימינה",
	"sharp left":   "חדות שמאלה",
	"sharp right":  "חדות ימינה",
	"straight":     "ישר",
}

// Instruction synthesizes a spoken maneuver from OSRM type, modifier and street name
func Instruction(typ, modifier, name string) string {
	mod := modifiers[modifier]
	var verb string
	switch typ {
	case "arrive":
		return "הגעתם ליעד"
	case "depart":
		verb = "צאו לדרך"
	case "roundabout", "rotary", "roundabout turn", "exit roundabout", "exit rotary":
		verb = "היכנסו לכיכר"
	case "merge":
		verb = "השתלבו"
	case "fork":
		verb = join("בהתפצלות פנו", mod)
	case "end of road":
		verb = join("בסוף הדרך פנו", mod)
	case "continue", "new name":
		verb = join("המשיכו", mod)
	default:
		switch {
		case modifier == "uturn":
			verb = "בצעו פניית פרסה"
		case mod == "" || modifier == "straight":
			verb = "המשיכו ישר"
		default:
			verb = "פנו " + mod
		}
	}
	if name = strings.TrimSpace(name); name != "" {
		verb += " אל " + name
	}
	return verb
}

func join(a, b string) string {
	if b == "" {
		return a
	}
	return a + " " + b
}
