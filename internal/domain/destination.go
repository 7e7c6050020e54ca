package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type DestinationType string

const (
	TypeBeach      DestinationType = "Beach"
	TypeMountain   DestinationType = "Mountain"
	TypeCity       DestinationType = "City"
	TypeHistorical DestinationType = "Historical"
	TypeCultural   DestinationType = "Cultural"
	TypeAdventure  DestinationType = "Adventure"
)

var destinationTypes = []DestinationType{
	TypeBeach, TypeMountain, TypeCity, TypeHistorical, TypeCultural, TypeAdventure,
}

func DestinationTypes() []DestinationType {
	out := make([]DestinationType, len(destinationTypes))
	copy(out, destinationTypes)
	return out
}

func ParseDestinationType(value string) (DestinationType, error) {
	trimmed := strings.TrimSpace(value)
	for _, t := range destinationTypes {
		if strings.EqualFold(trimmed, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown destination type %q", value)
}

// PriceRange is the nightly price band in whole currency units.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Destination struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Type        DestinationType `json:"type"`
	Rating      float64         `json:"rating"`
	PriceRange  *PriceRange     `json:"priceRange,omitempty"`
	Images      []string        `json:"images"`
	Description string          `json:"description,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
	Reviews     []Review        `json:"reviews"`
}

// PrimaryImage is the thumbnail shown on listing cards: the first gallery
// image, or empty when the record carries none.
func (d *Destination) PrimaryImage() string {
	if len(d.Images) == 0 {
		return ""
	}
	return d.Images[0]
}

func (d *Destination) ReviewCount() int {
	return len(d.Reviews)
}

func (d *Destination) Clone() *Destination {
	if d == nil {
		return nil
	}
	next := *d
	if d.PriceRange != nil {
		pr := *d.PriceRange
		next.PriceRange = &pr
	}
	next.Images = append([]string(nil), d.Images...)
	next.Amenities = append([]string(nil), d.Amenities...)
	next.Reviews = append([]Review(nil), d.Reviews...)
	return &next
}
