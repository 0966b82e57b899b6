package enums

import "fmt"

// StorageType is the kind of warehouse storage requested.
type StorageType string

const (
	StorageTypeDry       StorageType = "dry"
	StorageTypeCold      StorageType = "cold"
	StorageTypeHazardous StorageType = "hazardous"
)

var validStorageTypes = []StorageType{
	StorageTypeDry,
	StorageTypeCold,
	StorageTypeHazardous,
}

// String implements fmt.Stringer.
func (t StorageType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known StorageType.
func (t StorageType) IsValid() bool {
	for _, candidate := range validStorageTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseStorageType converts raw input into a StorageType.
func ParseStorageType(value string) (StorageType, error) {
	for _, candidate := range validStorageTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storage type %q", value)
}

// StorageSize buckets the requested footprint.
type StorageSize string

const (
	StorageSizeSmall  StorageSize = "small"
	StorageSizeMedium StorageSize = "medium"
	StorageSizeLarge  StorageSize = "large"
)

var validStorageSizes = []StorageSize{
	StorageSizeSmall,
	StorageSizeMedium,
	StorageSizeLarge,
}

// String implements fmt.Stringer.
func (s StorageSize) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StorageSize.
func (s StorageSize) IsValid() bool {
	for _, candidate := range validStorageSizes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStorageSize converts raw input into a StorageSize.
func ParseStorageSize(value string) (StorageSize, error) {
	for _, candidate := range validStorageSizes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storage size %q", value)
}

// StorageDuration is the requested rental horizon.
type StorageDuration string

const (
	StorageDurationShortTerm StorageDuration = "short-term"
	StorageDurationLongTerm  StorageDuration = "long-term"
)

var validStorageDurations = []StorageDuration{
	StorageDurationShortTerm,
	StorageDurationLongTerm,
}

// String implements fmt.Stringer.
func (d StorageDuration) String() string {
	return string(d)
}

// IsValid reports whether the value is a known StorageDuration.
func (d StorageDuration) IsValid() bool {
	for _, candidate := range validStorageDurations {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseStorageDuration converts raw input into a StorageDuration.
func ParseStorageDuration(value string) (StorageDuration, error) {
	for _, candidate := range validStorageDurations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storage duration %q", value)
}

// WarehouseStatus tracks follow-up on a warehouse request.
type WarehouseStatus string

const (
	WarehouseStatusNew       WarehouseStatus = "new"
	WarehouseStatusContacted WarehouseStatus = "contacted"
	WarehouseStatusClosed    WarehouseStatus = "closed"
)

var validWarehouseStatuses = []WarehouseStatus{
	WarehouseStatusNew,
	WarehouseStatusContacted,
	WarehouseStatusClosed,
}

var warehouseStatusTransitions = map[WarehouseStatus][]WarehouseStatus{
	WarehouseStatusNew:       {WarehouseStatusContacted, WarehouseStatusClosed},
	WarehouseStatusContacted: {WarehouseStatusClosed},
}

// String implements fmt.Stringer.
func (s WarehouseStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known WarehouseStatus.
func (s WarehouseStatus) IsValid() bool {
	for _, candidate := range validWarehouseStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether moving from s to target is allowed.
func (s WarehouseStatus) CanTransition(target WarehouseStatus) bool {
	for _, candidate := range warehouseStatusTransitions[s] {
		if candidate == target {
			return true
		}
	}
	return false
}

// ParseWarehouseStatus converts raw input into a WarehouseStatus.
func ParseWarehouseStatus(value string) (WarehouseStatus, error) {
	for _, candidate := range validWarehouseStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid warehouse status %q", value)
}
