package utils

import (
	"math"
	"strconv"
)

// HaversineDistanceMeters returns the great-circle distance between two
// coordinates in meters.
func HaversineDistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371000

	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// RoundCoordinate normalizes a map/device coordinate to 6 decimal places,
// the precision stored on attendance records.
func RoundCoordinate(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 6, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// FormatCoordinate renders a coordinate with 6 decimal places.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
