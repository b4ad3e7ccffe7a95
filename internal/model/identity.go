package model

// Identity is an opaque, already-authenticated account identity supplied by
// the host. The engine never interprets or verifies it.
type Identity string

// EscrowFor derives the custody account identity for a creator's pool. The
// host addressing scheme guarantees one active pool per creator, so the
// derived id is collision-free within a deployment.
func EscrowFor(creator Identity) Identity {
	return "escrow:" + creator
}
