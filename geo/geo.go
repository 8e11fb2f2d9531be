// Package geo maps geographic coordinates onto points of a sphere and back.
//
// The sphere uses a Y-up frame: +Y points to the north pole. Longitude is
// measured so that the inverse mapping is atan2(x, z), which lines the prime
// meridian up with the globe texture seam.
package geo

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EarthRadiusKm is the mean Earth radius used for surface distances.
const EarthRadiusKm = 6371.0

// longitudeOffsetDeg aligns theta with the globe texture: theta = lon - offset.
const longitudeOffsetDeg = -90.0

// GeoPoint is a geographic position in degrees.
type GeoPoint struct {
	LatitudeDeg  float64 `json:"lat" yaml:"lat"`
	LongitudeDeg float64 `json:"lon" yaml:"lon"`
}

// SpacePoint is a position on a sphere centred at the origin.
type SpacePoint = r3.Vec

// ToSpacePoint converts a latitude/longitude pair to a point on a sphere of
// the given radius. Latitude is clamped to [-90, 90] and longitude wrapped, so
// every input maps to a point.
func ToSpacePoint(lat, lon, radius float64) SpacePoint {
	lat = clamp(lat, -90, 90)
	lon = WrapLongitude(lon)

	phi := deg2rad(90 - lat)
	theta := deg2rad(lon - longitudeOffsetDeg)

	sinPhi := math.Sin(phi)
	return SpacePoint{
		X: -radius * sinPhi * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
}

// ToGeoPoint is the inverse of ToSpacePoint. At the poles longitude is
// undefined and reported as 0.
func ToGeoPoint(p SpacePoint, radius float64) GeoPoint {
	lat := rad2deg(math.Asin(clamp(p.Y/radius, -1, 1)))
	if math.Abs(lat) == 90 || (p.X == 0 && p.Z == 0) {
		return GeoPoint{LatitudeDeg: lat, LongitudeDeg: 0}
	}
	return GeoPoint{
		LatitudeDeg:  lat,
		LongitudeDeg: WrapLongitude(rad2deg(math.Atan2(p.X, p.Z))),
	}
}

// WrapLongitude wraps lon into (-180, 180].
func WrapLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}
	return lon
}

// GreatCircleDistanceKm returns the haversine distance between two points on
// the Earth's surface.
func GreatCircleDistanceKm(a, b GeoPoint) float64 {
	lat1 := deg2rad(a.LatitudeDeg)
	lat2 := deg2rad(b.LatitudeDeg)
	dLat := lat2 - lat1
	dLon := deg2rad(b.LongitudeDeg - a.LongitudeDeg)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }
