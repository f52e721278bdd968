package model

import "time"

// CarLocation is a dropped pin recording where the car was parked.  The
// service only stores and lists these records; rendering them on a map is
// the client's concern.
//
// Fields:
//  ID          – primary key identifier (UUID assigned by the store).
//  Latitude    – WGS84 latitude of the parking spot.
//  Longitude   – WGS84 longitude of the parking spot.
//  Description – optional free‑text hint ("level 2, near the exit").
//  CreatedAt   – when the pin was dropped.
type CarLocation struct {
    ID          string    `json:"id"`          // car_locations.id
    Latitude    float64   `json:"latitude"`    // car_locations.latitude
    Longitude   float64   `json:"longitude"`   // car_locations.longitude
    Description *string   `json:"description"` // car_locations.description (nullable)
    CreatedAt   time.Time `json:"created_at"`  // car_locations.created_at
}
