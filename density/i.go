package density

// Provider supplies the potential carbon content per unit of land area for one
// land type. It is the only land-type specific knowledge a carbon calculator needs.
type Provider interface {
	AboveGroundCarbonPerArea(year int) float64
	BelowGroundCarbonPerArea(year int) float64
}
