package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Record addresses are deterministic: each store derives the address of a
// new record from the creating identity plus a per-owner sequence number,
// so an owner can hold any number of assets of the same type and create
// any number of orders within one clock tick without colliding.
var (
	assetNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("asset.vaultledger.vwa-labs.github.com"))
	orderNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("order.vaultledger.vwa-labs.github.com"))
)

// AssetAddress derives the address of an asset record from its owner, its
// asset type, and the owner's asset sequence number.
func AssetAddress(owner string, assetType AssetType, seq uint64) string {
	return uuid.NewSHA1(assetNamespace, []byte(fmt.Sprintf("%s|%s|%d", owner, assetType, seq))).String()
}

// OrderAddress derives the address of a trade order record from its owner,
// its creation timestamp, and the owner's order sequence number.
func OrderAddress(owner string, createdAt int64, seq uint64) string {
	return uuid.NewSHA1(orderNamespace, []byte(fmt.Sprintf("%s|%d|%d", owner, createdAt, seq))).String()
}
