package delivery

import "parcels/internal/core/domain/model/kernel"

// Changes lists the fields Edit may replace. A nil field keeps the current value;
// a non-nil zero Phone or Email clears the optional field.
type Changes struct {
	Phone1 *kernel.Phone
	Phone2 *kernel.Phone
	Email  *kernel.Email
	Weight *kernel.Weight
	From   *kernel.City
	To     *kernel.City
}

// IsEmpty reports whether no field is being replaced.
func (c Changes) IsEmpty() bool {
	return c.Phone1 == nil && c.Phone2 == nil && c.Email == nil &&
		c.Weight == nil && c.From == nil && c.To == nil
}
