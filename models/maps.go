package models

// Marker is one pin on a destination map: a course, hotel, restaurant or
// experience with its coordinates.
type Marker struct {
	ID       string      `json:"id" bson:"id"`
	Name     string      `json:"name" bson:"name"`
	Type     string      `json:"type" bson:"type"`
	Location Coordinates `json:"location" bson:"location"`
}

// MapConfig is the per-city map setup the client renders: tile style,
// initial viewport and the marker legend.
type MapConfig struct {
	City       string            `json:"city" bson:"city"`
	Center     Coordinates       `json:"center" bson:"center"`
	Zoom       int               `json:"zoom" bson:"zoom"`
	TileStyle  string            `json:"tileStyle,omitempty" bson:"tileStyle,omitempty"`
	TypeLabels map[string]string `json:"typeLabels,omitempty" bson:"typeLabels,omitempty"`
}
