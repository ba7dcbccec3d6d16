package models

// VinRequest is the payload for POST /vin.
type VinRequest struct {
	// VIN is the vehicle identification number to look up. Required.
	// It is opaque: no checksum or format validation is performed.
	VIN string `json:"vin" binding:"required"`
}
