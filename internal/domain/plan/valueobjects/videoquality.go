package valueobjects

import "errors"

// VideoQuality represents the maximum playback quality tier a plan allows.
type VideoQuality string

const (
	VideoQualitySD  VideoQuality = "SD"
	VideoQualityHD  VideoQuality = "HD"
	VideoQualityFHD VideoQuality = "FHD"
	VideoQuality4K  VideoQuality = "4K"
)

// ErrInvalidVideoQuality is returned when the quality tier is not recognized
var ErrInvalidVideoQuality = errors.New("invalid video quality")

// ordering from lowest to highest tier
var qualityRank = map[VideoQuality]int{
	VideoQualitySD:  1,
	VideoQualityHD:  2,
	VideoQualityFHD: 3,
	VideoQuality4K:  4,
}

// NewVideoQuality validates and returns a VideoQuality
func NewVideoQuality(value string) (VideoQuality, error) {
	quality := VideoQuality(value)
	if !quality.IsValid() {
		return "", ErrInvalidVideoQuality
	}
	return quality, nil
}

// IsValid checks whether the quality is one of the known tiers
func (q VideoQuality) IsValid() bool {
	return qualityRank[q] != 0
}

// AtLeast reports whether q is the same tier as other or higher.
func (q VideoQuality) AtLeast(other VideoQuality) bool {
	return qualityRank[q] >= qualityRank[other]
}

func (q VideoQuality) String() string {
	return string(q)
}
