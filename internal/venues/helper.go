package venues

func (v *Venue) ToResponse() VenueResponse {
	resp := VenueResponse{
		ID:          v.ID.String(),
		OwnerID:     v.OwnerID.String(),
		Name:        v.Name,
		Description: v.Description,
		Address:     v.Address,
		City:        v.City,
		Timezone:    v.Timezone,
		OpenHour:    v.OpenHour,
		CloseHour:   v.CloseHour,
		Images:      v.Images,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}

	for _, sp := range v.SportPrices {
		resp.Sports = append(resp.Sports, sp.Sport)
		resp.SportPrices = append(resp.SportPrices, SportPriceResponse{
			Sport:        sp.Sport,
			PricePerHour: sp.PricePerHour,
		})
	}

	for _, c := range v.Courts {
		resp.Courts = append(resp.Courts, c.ToResponse())
	}

	return resp
}

func (c *Court) ToResponse() CourtResponse {
	return CourtResponse{
		ID:       c.ID.String(),
		VenueID:  c.VenueID.String(),
		Sport:    c.Sport,
		Name:     c.Name,
		IsActive: c.IsActive,
	}
}
