package model

// Chain describes the native asset and labels of one explorer's exports.
type Chain struct {
	Label     string `json:"label"`
	Asset     string `json:"asset"`
	Worksheet string `json:"worksheet"`
}
