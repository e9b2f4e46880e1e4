package arrakeener

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Snapshot is a point-in-time copy of an Arrakeener's fields
type Snapshot struct {
	FirstName   string `cbor:"first_name" json:"first_name" yaml:"first_name"`
	LastName    string `cbor:"last_name" json:"last_name" yaml:"last_name"`
	Affiliation string `cbor:"affiliation" json:"affiliation" yaml:"affiliation"`
	Occupation  string `cbor:"occupation" json:"occupation" yaml:"occupation"`
	Energy      int64  `cbor:"energy" json:"energy" yaml:"energy"`
	Solaris     int64  `cbor:"solaris" json:"solaris" yaml:"solaris"`
	Spice       int64  `cbor:"spice" json:"spice" yaml:"spice"`
}

var snapshotEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoding mode: %v", err))
	}
	return em
}()

// EncMode returns the core deterministic CBOR encoding mode used for
// snapshots and anything that embeds them
func EncMode() cbor.EncMode {
	return snapshotEncMode
}

// EncodeCBOR encodes the snapshot with core deterministic CBOR encoding
func (s Snapshot) EncodeCBOR() ([]byte, error) {
	data, err := snapshotEncMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshotCBOR decodes a snapshot produced by EncodeCBOR
func DecodeSnapshotCBOR(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}

// SameCounters reports whether both snapshots hold the same Energy, Solaris
// and Spice
func (s Snapshot) SameCounters(other Snapshot) bool {
	return s.Energy == other.Energy && s.Solaris == other.Solaris && s.Spice == other.Spice
}
