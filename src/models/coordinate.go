package models

// Coordinate is a WGS84 point. Value type, no identity.
type Coordinate struct {
	Latitude  float64 `bson:"latitude" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `bson:"longitude" json:"longitude" validate:"gte=-180,lte=180"`
}
