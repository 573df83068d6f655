package postgres

import (
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"marketplace/pkg/domain"
)

const (
	distanceColumn = "distance_km"
	earthRadiusKm  = 6371.0
)

// distanceExpr computes the great-circle distance in km between origin and
// the latitude/longitude columns of the current row. It yields NULL when the
// row has no coordinates, or when origin is nil.
func distanceExpr(origin *domain.Coordinates) exp.Expression {
	if origin == nil {
		return goqu.L("NULL::DOUBLE PRECISION").As(distanceColumn)
	}

	return goqu.L(
		"(2 * ? * ASIN(LEAST(1, SQRT("+
			"POWER(SIN(RADIANS(latitude - ?) / 2), 2) + "+
			"COS(RADIANS(?)) * COS(RADIANS(latitude)) * POWER(SIN(RADIANS(longitude - ?) / 2), 2)))))",
		earthRadiusKm, origin.Lat, origin.Lat, origin.Lon,
	).As(distanceColumn)
}
