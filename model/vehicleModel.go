// model/vehicle.go
package model

import "strings"

type VehicleType string

const (
	VehicleStandard VehicleType = "standard"
	VehicleLimo     VehicleType = "limo"
	VehicleVan      VehicleType = "van"
)

type Vehicle struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Seats    int64  `json:"seats"`
	Plate    string `json:"plate"`
}

// DeriveVehicleType maps a free-text category name to the two large-capacity
// types the dashboard distinguishes. Matching is case-insensitive substring;
// vehicle naming is the only signal available, so ambiguous names ("limo van")
// resolve in favor of limo.
func DeriveVehicleType(category string) VehicleType {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "limo"):
		return VehicleLimo
	case strings.Contains(c, "van"):
		return VehicleVan
	default:
		return VehicleStandard
	}
}
