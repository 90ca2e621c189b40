package domain

// Point - географическая точка (WGS-84)
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
