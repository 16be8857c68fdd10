package models

// ModeKind distinguishes the two display modes of the dashboard.
type ModeKind int

const (
	// ShowTopTen displays the ten highest-value countries per indicator.
	ShowTopTen ModeKind = iota
	// ShowAroundCountry displays the selected country and its ranking
	// neighbors per indicator.
	ShowAroundCountry
)

// Wire values for the mode query parameter. These match the radio button
// values the dashboard page submits.
const (
	ModeParamTopTen  = "top10"
	ModeParamCountry = "country"
)

// DisplayMode carries the user's display choice. Country is only meaningful
// for ShowAroundCountry, and may be empty while the dropdown is shown but
// nothing has been picked yet.
type DisplayMode struct {
	Kind    ModeKind
	Country string
}

// TopTenMode returns the default display mode.
func TopTenMode() DisplayMode {
	return DisplayMode{Kind: ShowTopTen}
}

// AroundCountryMode returns the neighbor-ranking mode for the given country.
func AroundCountryMode(country string) DisplayMode {
	return DisplayMode{Kind: ShowAroundCountry, Country: country}
}

// ParseDisplayMode maps the mode/country query parameters to a DisplayMode.
// An empty mode defaults to top-ten. The second return value is false for an
// unrecognized mode value.
func ParseDisplayMode(mode, country string) (DisplayMode, bool) {
	switch mode {
	case "", ModeParamTopTen:
		return TopTenMode(), true
	case ModeParamCountry:
		return AroundCountryMode(country), true
	default:
		return DisplayMode{}, false
	}
}

// ModeParam returns the wire value for the mode.
func (m DisplayMode) ModeParam() string {
	if m.Kind == ShowAroundCountry {
		return ModeParamCountry
	}
	return ModeParamTopTen
}

// IsTopTen reports whether the mode behaves as top-ten: either the top-ten
// mode itself, or the country mode while no country has actually been chosen.
func (m DisplayMode) IsTopTen() bool {
	return m.Kind == ShowTopTen || m.Country == ""
}
