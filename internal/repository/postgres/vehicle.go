package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

var _ model.VehicleStore = (*VehicleRepository)(nil)

func vehicleMapping() Mapping[model.Vehicle] {
	return Mapping[model.Vehicle]{
		Table:   "vehicles",
		Columns: []string{"id", "brand", "model", "year", "color", "license_plate", "created_at", "updated_at"},
		Args: func(v model.Vehicle) []any {
			return []any{v.ID, v.Brand, v.Model, v.Year, v.Color, v.LicensePlate, v.CreatedAt, v.UpdatedAt}
		},
		Scan: func(row pgx.Row) (model.Vehicle, error) {
			var v model.Vehicle
			err := row.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &v.Color, &v.LicensePlate, &v.CreatedAt, &v.UpdatedAt)
			return v, err
		},
	}
}

// VehicleRepository persists vehicles through the generic store.
type VehicleRepository struct {
	*Store[model.Vehicle]
}

func NewVehicleRepository(db *Connection) *VehicleRepository {
	return &VehicleRepository{
		Store: NewStore(db, vehicleMapping()),
	}
}
