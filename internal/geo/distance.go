// Package geo computes great-circle distances between latitude/longitude points.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the haversine distance between a and b in meters.
func Distance(a, b Point) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := phi2 - phi1
	dLambda := radians(b.Lng) - radians(a.Lng)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FormatDistance renders meters for display: whole meters below one
// kilometre, kilometres to one decimal place above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
