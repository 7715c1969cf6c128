package domain

import "fmt"

// AssetType identifies the physical material of an asset record.
type AssetType string

const (
	AssetTypeGold      AssetType = "gold"
	AssetTypeSilver    AssetType = "silver"
	AssetTypePlatinum  AssetType = "platinum"
	AssetTypePalladium AssetType = "palladium"
	AssetTypeDiamond   AssetType = "diamond"
	AssetTypeRuby      AssetType = "ruby"
	AssetTypeEmerald   AssetType = "emerald"
	AssetTypeSapphire  AssetType = "sapphire"
)

// AssetTypes lists every valid asset type in declaration order.
var AssetTypes = []AssetType{
	AssetTypeGold,
	AssetTypeSilver,
	AssetTypePlatinum,
	AssetTypePalladium,
	AssetTypeDiamond,
	AssetTypeRuby,
	AssetTypeEmerald,
	AssetTypeSapphire,
}

// Valid reports whether t is a member of the closed asset type set.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeGold, AssetTypeSilver, AssetTypePlatinum, AssetTypePalladium,
		AssetTypeDiamond, AssetTypeRuby, AssetTypeEmerald, AssetTypeSapphire:
		return true
	}
	return false
}

// ParseAssetType converts a string to an AssetType, rejecting values
// outside the closed set.
func ParseAssetType(s string) (AssetType, error) {
	t := AssetType(s)
	if !t.Valid() {
		return "", &ValidationError{
			Message: fmt.Sprintf("unknown asset_type: %q. Must be one of: gold, silver, platinum, palladium, diamond, ruby, emerald, sapphire", s),
		}
	}
	return t, nil
}

// Asset is one serial-numbered physical unit of a precious material or gem
// under custody. Records live in the asset store keyed by their derived
// address; only the asset registry and the trade executor mutate them.
type Asset struct {
	Address         string
	OwnerID         string
	AssetType       AssetType
	Weight          int64 // milligrams
	Purity          int64 // percentage, recorded as supplied
	Certification   string
	CurrentPrice    int64 // unit price in the smallest settlement denomination
	CreatedAt       int64 // unix seconds
	LastPriceUpdate int64 // unix seconds, 0 until the first price update
	IsActive        bool
}

// TransferTo reassigns ownership of the asset record. Invoked only by the
// trade executor inside its serialized execution step.
func (a *Asset) TransferTo(newOwner string) {
	a.OwnerID = newOwner
}
