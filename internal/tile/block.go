// Package tile defines the packed one-byte grid cell used by the simulation.
package tile

import "fmt"

const (
	materialMask = 0x3f
	seedShift    = 6
	seedMask     = 0x03
)

// Block is one grid cell: the low six bits hold the Material, the high two bits a
// cosmetic variant seed in 0..3.
type Block uint8

// New packs a material and seed. Both are masked; the seed wraps modulo 4.
func New(m Material, seed uint8) Block {
	return Block(uint8(m)&materialMask | (seed&seedMask)<<seedShift)
}

// FromByte is the checked conversion from an untrusted raw byte.
func FromByte(v uint8) (Block, error) {
	if _, err := MaterialFromByte(v & materialMask); err != nil {
		return 0, err
	}
	return Block(v), nil
}

// Material unpacks the material bits. Only New and SetMaterial write them, so the
// value is always a defined material.
func (b Block) Material() Material { return Material(uint8(b) & materialMask) }

// Seed unpacks the variant seed.
func (b Block) Seed() uint8 { return uint8(b) >> seedShift & seedMask }

// SetMaterial replaces the material and keeps the seed.
func (b *Block) SetMaterial(m Material) {
	*b = Block(uint8(*b)&^materialMask | uint8(m)&materialMask)
}

// SetSeed replaces the seed and keeps the material.
func (b *Block) SetSeed(seed uint8) {
	*b = Block(uint8(*b)&materialMask | (seed&seedMask)<<seedShift)
}

// Byte returns the packed representation.
func (b Block) Byte() uint8 { return uint8(b) }

// Tags returns the capability tags of the block's material.
func (b Block) Tags() Tags { return TagsOf(b.Material()) }

// IsStatic reports whether the block never moves.
func (b Block) IsStatic() bool { return b.Tags().Has(Static) }

// IsLiquid reports whether the block flows.
func (b Block) IsLiquid() bool { return b.Tags().Has(Liquid) }

// IsHot reports whether the block is hot.
func (b Block) IsHot() bool { return b.Tags().Has(Hot) }

// IsCold reports whether the block is cold.
func (b Block) IsCold() bool { return b.Tags().Has(Cold) }

// IsEmpty reports whether other blocks can fall into this one.
func (b Block) IsEmpty() bool { return b.Tags().Has(Empty) }

// IsDivine reports whether the block is indestructible.
func (b Block) IsDivine() bool { return b.Tags().Has(Divine) }

// IsSticky reports whether the block clings in place.
func (b Block) IsSticky() bool { return b.Tags().Has(Sticky) }

func (b Block) String() string {
	return fmt.Sprintf("%v/%d", b.Material(), b.Seed())
}
