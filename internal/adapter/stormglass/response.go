package stormglass

// Storm Glass API response types. Source values are pointers so an absent
// source is distinguishable from a reading of 0.

type response struct {
	Hours []*hour `json:"hours"`
}

type hour struct {
	Time          string        `json:"time"`
	WindDirection *sourceValues `json:"windDirection"`
	WindSpeed     *sourceValues `json:"windSpeed"`
	WindGust      *sourceValues `json:"windGust"`
}

type sourceValues struct {
	SG   *float64 `json:"sg"`
	NOAA *float64 `json:"noaa"`
}

// value returns the preferred reading: sg, then noaa, then 0.
func (v *sourceValues) value() float64 {
	if v == nil {
		return 0
	}
	if v.SG != nil {
		return *v.SG
	}
	if v.NOAA != nil {
		return *v.NOAA
	}
	return 0
}
