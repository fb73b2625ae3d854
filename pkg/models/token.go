package models

// Token is an ERC-20 holding or catalog entry.
type Token struct {
	Symbol          string `json:"symbol" yaml:"symbol"`
	Name            string `json:"name" yaml:"name"`
	Balance         string `json:"balance,omitempty" yaml:"-"`
	Decimals        int    `json:"decimals" yaml:"decimals"`
	ContractAddress string `json:"contract_address" yaml:"contract"`
	Logo            string `json:"logo,omitempty" yaml:"logo,omitempty"`
}
