// Package roll models a developed film roll: the JSON sidecar exported by a
// shooting log app, and the scanned frames that accompany it.
package roll

// FilmRoll holds roll-level metadata from the sidecar.
type FilmRoll struct {
	Name string `json:"name"`
	ISO  int    `json:"iso"`
}

// Location is a recorded shooting position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Exposure is one recorded frame's shooting parameters.
type Exposure struct {
	Number         int       `json:"exposureNumber"`
	Aperture       string    `json:"aperture"`
	ShutterSpeed   string    `json:"shutterSpeed"`
	AdditionalInfo string    `json:"additionalInfo"`
	CapturedAt     string    `json:"capturedAt"`
	Location       *Location `json:"location"`
}

// Sidecar is the JSON document accompanying a batch of scans.
type Sidecar struct {
	FilmRoll  FilmRoll   `json:"filmRoll"`
	Exposures []Exposure `json:"exposures"`
}

// Pair couples one scanned image with the exposure that produced it.
type Pair struct {
	Image    string
	Exposure Exposure
}
