package entities

// SellerProfile maps a wallet address to the seller's contact methods.
// The same contact invariant as for orders applies: at least one of
// Email and Social must be non-blank.
type SellerProfile struct {
	WalletAddress string
	Email         string
	Social        string
}
