package model

// AdminConfig is the singleton operator configuration for a deployment.
// Fields are immutable after Initialize.
type AdminConfig struct {
	Authority     Identity `json:"authority"`
	BurnWallet    Identity `json:"burn_wallet"`
	MintAuthority Identity `json:"mint_authority,omitempty"`
}
