// Package domain models surface wind observations for a fixed surf spot.
//
// # Data Source
//
// Observations come from the Storm Glass point weather API
// (https://api.stormglass.io/v2/weather/point). Each request asks for a
// one-hour window starting at the current wall-clock time and three
// parameters: windDirection, windSpeed and windGust. The response carries one
// record per hour; the first record is treated as the current observation.
//
// # Storm Glass Conventions
//
// Per-source values:
//
//	Every parameter is an object keyed by data source, e.g.
//	  "windSpeed": {"sg": 6.4, "noaa": 6.1}
//	"sg" is Storm Glass' own blended source and is preferred. "noaa" is used
//	when "sg" is absent. A parameter missing from both sources reads as 0.
//
// Units:
//
//	Speeds and gusts are meters per second. Direction is the compass bearing
//	the wind blows FROM, in degrees [0, 360).
//
// Timestamps:
//
//	The hour's "time" field is an ISO-8601 string and is carried verbatim
//	into [WindObservation.ObservedAt].
//
// # Derived Values
//
// Cardinal direction:
//
//	16 compass points, 22.5° per sector, centred on the point:
//	  round(degrees / 22.5) mod 16  →  N, NNE, NE, ... NNW
//	so 359° and 0° both read "N".
//
// Intensity:
//
//	A Beaufort-like 0–12 scale keyed on km/h, each tier with a label and a
//	presentation color that gets hotter as the scale rises:
//
//	  <1 Calm | <6 Light air | <12 Light breeze | <20 Gentle breeze |
//	  <29 Moderate breeze | <39 Fresh breeze | <50 Strong breeze |
//	  <62 Near gale | <75 Gale | <89 Strong gale | <103 Storm |
//	  <118 Violent storm | ≥118 Hurricane
//
// # Degradation
//
// Upstream rejections and transport failures are masked by synthetic
// observations so presentation layers always have something to draw. The
// only outcome a caller branches on is [ErrWindDataUnavailable], returned when
// the upstream answers OK with no hourly records. The masked failure modes
// stay visible to telemetry through [FetchOutcome].
package domain
